package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Selectors collects every CSS selector the scraper depends on.
// Wikipedia's markup classes are incidental and drift over time, so
// they live here as data rather than being spread across the parsers.
type Selectors struct {
	// IndexTable matches the alpha-2 code table on the index page
	IndexTable string `yaml:"index_table"`
	// PageTitle matches the display-name span inside an article's
	// primary heading
	PageTitle string `yaml:"page_title"`
	// CountryInfobox matches the full national infobox
	CountryInfobox string `yaml:"country_infobox"`
	// TerritoryInfobox matches the dependent-territory infobox
	TerritoryInfobox string `yaml:"territory_infobox"`
	// InfoboxLabel matches the label cells inside an infobox
	InfoboxLabel string `yaml:"infobox_label"`
	// CountryName matches the official-name element inside an infobox
	CountryName string `yaml:"country_name"`
}

// Config holds the scrape endpoints and the selector set
type Config struct {
	BaseURL   string    `yaml:"base_url"`
	IndexPath string    `yaml:"index_path"`
	Selectors Selectors `yaml:"selectors"`
}

// IndexURL returns the absolute URL of the alpha-2 index page
func (c *Config) IndexURL() string {
	return c.BaseURL + c.IndexPath
}

// Default returns the built-in configuration for en.wikipedia.org
func Default() *Config {
	return &Config{
		BaseURL:   "https://en.wikipedia.org",
		IndexPath: "/wiki/ISO_3166-1_alpha-2",
		Selectors: Selectors{
			IndexTable:       "table.wikitable.sortable.sort-under",
			PageTitle:        "h1#firstHeading span.mw-page-title-main",
			CountryInfobox:   "table.ib-country",
			TerritoryInfobox: "table.ib-pol-div",
			InfoboxLabel:     ".infobox-label",
			CountryName:      ".country-name",
		},
	}
}

// Load reads configuration overrides from a YAML file. Keys not set in
// the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
