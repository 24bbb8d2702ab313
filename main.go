package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"iso3166-scraper/config"
	"iso3166-scraper/fetcher"
	"iso3166-scraper/scraper"
	"iso3166-scraper/writer"
)

func main() {
	details := flag.Bool("details", false, "Also scrape each country's own article for official name, capital and language")
	configPath := flag.String("config", "", "Path to a YAML selector override file (optional)")
	flag.Parse()

	// positional arguments: <output-file> [flag-url-base]
	args := flag.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Error: must specify name of output file")
		os.Exit(1)
	}
	outputPath := args[0]

	// the base must end in its own separator, e.g. https://example.com/flags/
	flagURLBase := ""
	if len(args) >= 2 {
		flagURLBase = args[1]
	}

	cfg := loadConfig(*configPath)

	s := scraper.New(cfg, fetcher.NewCollyFetcher(), fetcher.NewDetailFetcher())

	var records any
	var err error
	if *details {
		records, err = s.GetAllDetails(flagURLBase)
	} else {
		records, err = s.GetAll(flagURLBase)
	}
	if err != nil {
		log.Fatalf("Scraping failed: %v\n", err)
	}

	if err := writer.WriteJSON(outputPath, records); err != nil {
		log.Fatalf("Failed to write output: %v\n", err)
	}

	fmt.Fprintln(os.Stderr, "Success")
}

// loadConfig loads selector overrides, or the built-in defaults when
// no file was given
func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}
	return cfg
}
