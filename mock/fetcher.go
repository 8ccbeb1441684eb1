package mock

import (
	"context"

	"github.com/fwojciec/artdoc"
)

var _ artdoc.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of artdoc.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

var _ artdoc.Downloader = (*Downloader)(nil)

// Downloader is a mock implementation of artdoc.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) ([]byte, string, error)
}

func (d *Downloader) Download(ctx context.Context, url string) ([]byte, string, error) {
	return d.DownloadFn(ctx, url)
}
