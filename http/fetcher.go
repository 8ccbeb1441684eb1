// Package http provides an HTTP-based implementation of artdoc.Fetcher and
// artdoc.Downloader, used to read web articles and to download images that
// providers return by URL.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/artdoc"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 60 * time.Second

// DefaultMaxBytes caps the size of a single response body.
const DefaultMaxBytes = 32 << 20

// DefaultUserAgent identifies artdoc to remote servers.
const DefaultUserAgent = "artdoc/1.0"

// Ensure Fetcher implements artdoc.Fetcher and artdoc.Downloader at compile time.
var (
	_ artdoc.Fetcher    = (*Fetcher)(nil)
	_ artdoc.Downloader = (*Fetcher)(nil)
)

// Fetcher retrieves content from URLs using plain HTTP GET requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	maxBytes  int64
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBytes limits the accepted response size.
// Defaults to DefaultMaxBytes if not specified.
func WithMaxBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBytes = n
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		maxBytes:  DefaultMaxBytes,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body at url as text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, _, err := f.get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Download retrieves the raw body at url along with its content type.
func (f *Fetcher) Download(ctx context.Context, url string) ([]byte, string, error) {
	return f.get(ctx, url)
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, string, error) {
	if url == "" {
		return nil, "", artdoc.Errorf(artdoc.EINVALID, "URL required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", artdoc.Errorf(artdoc.EINVALID, "invalid URL %q: %v", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	// Read one byte past the limit to detect oversized bodies.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, "", err
	}
	if int64(len(body)) > f.maxBytes {
		return nil, "", artdoc.Errorf(artdoc.EINVALID, "response from %s exceeds %d bytes", url, f.maxBytes)
	}

	return body, resp.Header.Get("Content-Type"), nil
}
