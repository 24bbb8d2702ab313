package parser

import (
	"fmt"
	"strings"

	"iso3166-scraper/config"
	"iso3166-scraper/models"

	"github.com/PuerkitoBio/goquery"
)

// officialLanguagesLabel is the exact infobox label text, as published
// by Wikipedia with a non-breaking space rather than a regular one
const officialLanguagesLabel = "Official\u00a0languages"

// DetailParser extracts infobox data from a country's Wikipedia article
type DetailParser struct {
	selectors config.Selectors
}

// NewDetailParser creates a new DetailParser instance
func NewDetailParser(selectors config.Selectors) *DetailParser {
	return &DetailParser{
		selectors: selectors,
	}
}

// ParseHTML enriches a partially built record from a country article.
//
// The display name is overwritten with the article heading, which may
// differ from the index-table name. Articles with a full national
// infobox are marked sovereign, dependent-territory infoboxes are not,
// and pages with neither get the heading name as fullName and null
// capital/language. A label whose value cell is missing its anchor is
// an error that aborts the run.
func (p *DetailParser) ParseHTML(htmlContent string, rec *models.CountryDetails) error {
	doc, err := Document(htmlContent)
	if err != nil {
		return err
	}

	title := doc.Find(p.selectors.PageTitle).First()
	if title.Length() == 0 {
		return fmt.Errorf("page title not found for %s (selector %q)", rec.Alpha2, p.selectors.PageTitle)
	}
	rec.Name = strings.TrimSpace(title.Text())

	infobox := doc.Find(p.selectors.CountryInfobox).First()
	if infobox.Length() > 0 {
		rec.Sovereign = true
	} else {
		infobox = doc.Find(p.selectors.TerritoryInfobox).First()
		if infobox.Length() > 0 {
			rec.Sovereign = false
		} else {
			// no recognized infobox at all, e.g. exceptional
			// reservations and user-assigned ranges
			rec.FullName = rec.Name
			rec.Capital = nil
			rec.OfficialLanguage = nil
			return nil
		}
	}

	rec.FullName = p.extractFullName(infobox, rec.Name)

	return p.scanLabels(infobox, rec)
}

// extractFullName reads the official name from the infobox, falling
// back to the already-resolved display name
func (p *DetailParser) extractFullName(infobox *goquery.Selection, fallback string) string {
	name := strings.TrimSpace(infobox.Find(p.selectors.CountryName).First().Text())
	if name == "" {
		return fallback
	}
	return name
}

// scanLabels walks every infobox label in document order. The scan
// never breaks early, so when a label text matches more than once the
// last occurrence wins.
func (p *DetailParser) scanLabels(infobox *goquery.Selection, rec *models.CountryDetails) error {
	var scanErr error

	infobox.Find(p.selectors.InfoboxLabel).EachWithBreak(func(_ int, label *goquery.Selection) bool {
		text := strings.TrimSpace(label.Text())

		if strings.Contains(text, "Capital") {
			capital, err := siblingAnchorText(label)
			if err != nil {
				scanErr = fmt.Errorf("capital for %s: %w", rec.Alpha2, err)
				return false
			}
			rec.Capital = &capital
			return true
		}

		if text == officialLanguagesLabel {
			// only the first listed language is captured
			language, err := siblingAnchorText(label)
			if err != nil {
				scanErr = fmt.Errorf("official language for %s: %w", rec.Alpha2, err)
				return false
			}
			rec.OfficialLanguage = &language
		}

		return true
	})

	return scanErr
}

// siblingAnchorText returns the text of the first anchor inside the
// element immediately following the given label
func siblingAnchorText(label *goquery.Selection) (string, error) {
	value := label.Next()
	if value.Length() == 0 {
		return "", fmt.Errorf("label %q has no following sibling", strings.TrimSpace(label.Text()))
	}

	anchor := value.Find("a").First()
	if anchor.Length() == 0 {
		return "", fmt.Errorf("no anchor in value cell for label %q", strings.TrimSpace(label.Text()))
	}

	return strings.TrimSpace(anchor.Text()), nil
}
