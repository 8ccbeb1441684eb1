package artdoc

import "context"

// Fetcher retrieves text content from URLs.
type Fetcher interface {
	// Fetch returns the body of the page at url.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (string, error)
}

// Downloader retrieves binary content from URLs.
type Downloader interface {
	// Download returns the raw body at url and its content type.
	Download(ctx context.Context, url string) (data []byte, contentType string, err error)
}
