package mock

import (
	"context"

	"github.com/fwojciec/artdoc"
)

var _ artdoc.ImageStore = (*ImageStore)(nil)

// ImageStore is a mock implementation of artdoc.ImageStore.
type ImageStore struct {
	SaveImageFn func(ctx context.Context, name string, img *artdoc.Image) (string, error)
}

func (s *ImageStore) SaveImage(ctx context.Context, name string, img *artdoc.Image) (string, error) {
	return s.SaveImageFn(ctx, name, img)
}

var _ artdoc.ImageResizer = (*ImageResizer)(nil)

// ImageResizer is a mock implementation of artdoc.ImageResizer.
type ImageResizer struct {
	ResizeFn func(data []byte, maxWidth int) ([]byte, error)
}

func (r *ImageResizer) Resize(data []byte, maxWidth int) ([]byte, error) {
	return r.ResizeFn(data, maxWidth)
}
