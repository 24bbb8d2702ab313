package fetcher

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// DetailFetcher fetches the Wikipedia article of an individual country.
// The enrichment path makes one request per country, so a single resty
// client is reused for connection pooling across the whole run.
type DetailFetcher struct {
	client *resty.Client
}

// NewDetailFetcher creates a new DetailFetcher instance
func NewDetailFetcher() *DetailFetcher {
	return &DetailFetcher{
		client: resty.New(),
	}
}

// Fetch implements the Fetcher interface
func (df *DetailFetcher) Fetch(url string) (string, error) {
	res, err := df.client.R().Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if res.IsError() {
		return "", fmt.Errorf("unexpected status %s from %s", res.Status(), url)
	}

	return res.String(), nil
}
