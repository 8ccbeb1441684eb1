package fs

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/fwojciec/artdoc"
)

// Ensure ImageStore implements artdoc.ImageStore at compile time.
var _ artdoc.ImageStore = (*ImageStore)(nil)

// ImageStore saves generated images into a directory, downloading them first
// when the provider only returned a URL.
type ImageStore struct {
	dir        string
	downloader artdoc.Downloader
	resizer    artdoc.ImageResizer
	maxWidth   int
}

// ImageStoreOption configures an ImageStore.
type ImageStoreOption func(*ImageStore)

// WithResizer downscales every image wider than maxWidth before saving.
// A maxWidth of zero or less disables resizing.
func WithResizer(r artdoc.ImageResizer, maxWidth int) ImageStoreOption {
	return func(s *ImageStore) {
		s.resizer = r
		s.maxWidth = maxWidth
	}
}

// NewImageStore creates an ImageStore writing into dir.
// The downloader may be nil if every image carries inline data.
func NewImageStore(dir string, downloader artdoc.Downloader, opts ...ImageStoreOption) *ImageStore {
	s := &ImageStore{
		dir:        dir,
		downloader: downloader,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveImage writes img as name plus an extension matching its format and
// returns the file name relative to the store directory.
func (s *ImageStore) SaveImage(ctx context.Context, name string, img *artdoc.Image) (string, error) {
	if name == "" || filepath.Base(name) != name {
		return "", artdoc.Errorf(artdoc.EINVALID, "invalid image name %q", name)
	}
	if img == nil {
		return "", artdoc.Errorf(artdoc.EINVALID, "image required")
	}

	data, mimeType := img.Data, img.MIMEType
	if len(data) == 0 {
		if img.URL == "" {
			return "", artdoc.Errorf(artdoc.EINVALID, "image %q has neither data nor URL", name)
		}
		if s.downloader == nil {
			return "", artdoc.Errorf(artdoc.EINTERNAL, "no downloader configured for image %q", name)
		}

		var contentType string
		var err error
		data, contentType, err = s.downloader.Download(ctx, img.URL)
		if err != nil {
			return "", err
		}
		if mimeType == "" {
			mimeType = contentType
		}
	}

	if s.resizer != nil && s.maxWidth > 0 {
		resized, err := s.resizer.Resize(data, s.maxWidth)
		if err != nil {
			return "", err
		}
		data = resized
		// The resizer may re-encode, so the bytes decide the format.
		mimeType = ""
	}

	// CDNs often serve application/octet-stream; let the bytes decide then.
	if !strings.HasPrefix(strings.ToLower(mimeType), "image/") {
		mimeType = ""
	}
	stored := &artdoc.Image{Prompt: img.Prompt, Data: data, MIMEType: mimeType}

	filename := name + stored.Extension()
	if err := writeFileAtomic(filepath.Join(s.dir, filename), data); err != nil {
		return "", err
	}
	return filename, nil
}
