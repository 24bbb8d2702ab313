package fetcher

// Fetcher interface defines the contract for fetching implementations
type Fetcher interface {
	// Fetch performs a single GET against the given URL and returns
	// the raw response body as text
	Fetch(url string) (string, error)
}
