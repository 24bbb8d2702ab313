package parser

import (
	"fmt"
	"strings"

	"iso3166-scraper/config"

	"github.com/PuerkitoBio/goquery"
)

// Document parses raw page HTML into a navigable document. All newline
// characters are stripped first: the parser would otherwise keep them
// as text nodes, which pollutes extracted strings.
func Document(rawHTML string) (*goquery.Document, error) {
	stripped := strings.NewReplacer("\r", "", "\n", "").Replace(rawHTML)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(stripped))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	return doc, nil
}

// IndexRow is one data row of the alpha-2 index table
type IndexRow struct {
	Alpha2 string
	Name   string
	// Href is the country article link as found in the table,
	// usually relative to the Wikipedia origin
	Href string
}

// IndexParser extracts alpha-2 codes and country names from the
// ISO-3166-1 index table
type IndexParser struct {
	selectors config.Selectors
}

// NewIndexParser creates a new IndexParser instance
func NewIndexParser(selectors config.Selectors) *IndexParser {
	return &IndexParser{
		selectors: selectors,
	}
}

// ParseHTML extracts index rows from the raw HTML of the index page.
// Row order follows the table's source order. Rows whose first cell
// carries no id attribute are header rows and are skipped; any other
// structural mismatch is an error that aborts the run.
func (p *IndexParser) ParseHTML(htmlContent string) ([]IndexRow, error) {
	doc, err := Document(htmlContent)
	if err != nil {
		return nil, err
	}

	table := doc.Find(p.selectors.IndexTable).First()
	if table.Length() == 0 {
		return nil, fmt.Errorf("index table not found (selector %q)", p.selectors.IndexTable)
	}

	var rows []IndexRow
	var rowErr error

	table.Find("tbody").First().Children().EachWithBreak(func(i int, row *goquery.Selection) bool {
		cells := row.Children()

		// header rows have no id on the first cell
		alpha2, ok := cells.Eq(0).Attr("id")
		if !ok {
			return true
		}

		if len(alpha2) != 2 || alpha2 != strings.ToUpper(alpha2) {
			rowErr = fmt.Errorf("malformed alpha-2 id %q in row %d", alpha2, i)
			return false
		}

		anchor := cells.Eq(1).Find("a").First()
		if anchor.Length() == 0 {
			rowErr = fmt.Errorf("no anchor in name cell for code %s", alpha2)
			return false
		}

		rows = append(rows, IndexRow{
			Alpha2: alpha2,
			Name:   anchor.Text(),
			Href:   anchor.AttrOr("href", ""),
		})
		return true
	})
	if rowErr != nil {
		return nil, rowErr
	}

	return rows, nil
}
