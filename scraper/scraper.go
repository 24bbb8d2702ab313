package scraper

import (
	"fmt"
	"log"
	"net/url"

	"iso3166-scraper/config"
	"iso3166-scraper/fetcher"
	"iso3166-scraper/models"
	"iso3166-scraper/parser"
)

// Scraper composes the fetchers and parsers into the scrape pipeline.
// Both fetchers are injectable so tests can run on HTML fixtures
// without touching the network.
type Scraper struct {
	cfg           *config.Config
	indexFetcher  fetcher.Fetcher
	detailFetcher fetcher.Fetcher
}

// New creates a new Scraper instance
func New(cfg *config.Config, indexFetcher, detailFetcher fetcher.Fetcher) *Scraper {
	return &Scraper{
		cfg:           cfg,
		indexFetcher:  indexFetcher,
		detailFetcher: detailFetcher,
	}
}

// GetAll retrieves the ISO-3166 index table and returns one record per
// data row, in table order. When flagURLBase is non-empty each record
// gets a flag URL built by plain concatenation; the base must carry
// its own trailing separator and is not validated.
func (s *Scraper) GetAll(flagURLBase string) ([]models.Country, error) {
	rows, err := s.fetchIndex()
	if err != nil {
		return nil, err
	}

	countries := make([]models.Country, 0, len(rows))
	for _, row := range rows {
		countries = append(countries, s.buildRecord(row, flagURLBase))
	}

	return countries, nil
}

// GetAllDetails is the enrichment variant of GetAll: after the index
// scrape it fetches every country's own article, one request at a
// time, and fills in the infobox fields. Progress is logged per
// country since this path is slow.
func (s *Scraper) GetAllDetails(flagURLBase string) ([]models.CountryDetails, error) {
	rows, err := s.fetchIndex()
	if err != nil {
		return nil, err
	}

	detailParser := parser.NewDetailParser(s.cfg.Selectors)

	countries := make([]models.CountryDetails, 0, len(rows))
	for i, row := range rows {
		rec := models.CountryDetails{
			Country: s.buildRecord(row, flagURLBase),
		}

		pageURL, err := s.resolveHref(row.Href)
		if err != nil {
			return nil, fmt.Errorf("country %s: %w", row.Alpha2, err)
		}

		log.Printf("Fetching details %d/%d: %s (%s)\n", i+1, len(rows), row.Name, row.Alpha2)

		html, err := s.detailFetcher.Fetch(pageURL)
		if err != nil {
			return nil, fmt.Errorf("country %s: %w", row.Alpha2, err)
		}

		if err := detailParser.ParseHTML(html, &rec); err != nil {
			return nil, err
		}

		countries = append(countries, rec)
	}

	return countries, nil
}

// fetchIndex fetches and parses the alpha-2 index table
func (s *Scraper) fetchIndex() ([]parser.IndexRow, error) {
	html, err := s.indexFetcher.Fetch(s.cfg.IndexURL())
	if err != nil {
		return nil, fmt.Errorf("failed to fetch index page: %w", err)
	}

	return parser.NewIndexParser(s.cfg.Selectors).ParseHTML(html)
}

// buildRecord assembles the basic record for one index row
func (s *Scraper) buildRecord(row parser.IndexRow, flagURLBase string) models.Country {
	country := models.Country{
		Alpha2: row.Alpha2,
		Name:   row.Name,
	}
	if flagURLBase != "" {
		country.FlagURL = flagURLBase + row.Alpha2 + ".png"
	}
	return country
}

// resolveHref resolves a table link against the Wikipedia origin
func (s *Scraper) resolveHref(href string) (string, error) {
	if href == "" {
		return "", fmt.Errorf("index row has no article link")
	}

	base, err := url.Parse(s.cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("invalid article link %q: %w", href, err)
	}

	return base.ResolveReference(ref).String(), nil
}
