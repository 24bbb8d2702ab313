package fetcher

import (
	"fmt"

	"github.com/gocolly/colly/v2"
)

// CollyFetcher implements the Fetcher interface using colly
type CollyFetcher struct {
	collector *colly.Collector
}

// NewCollyFetcher creates a new CollyFetcher instance
func NewCollyFetcher() *CollyFetcher {
	c := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"),
		colly.AllowURLRevisit(),
	)

	return &CollyFetcher{
		collector: c,
	}
}

// Fetch implements the Fetcher interface
func (cf *CollyFetcher) Fetch(url string) (string, error) {
	var body string

	cf.collector.OnResponse(func(r *colly.Response) {
		body = string(r.Body)
	})

	if err := cf.collector.Visit(url); err != nil {
		return "", fmt.Errorf("failed to visit URL: %w", err)
	}

	cf.collector.Wait()

	if body == "" {
		return "", fmt.Errorf("empty response body from %s", url)
	}

	return body, nil
}
