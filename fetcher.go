package extraction

import "context"

// Fetcher retrieves raw HTML from URLs. Fetching is the caller's side
// of the contract; techniques themselves never touch the network.
type Fetcher interface {
	// Fetch retrieves the HTML document at the URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
