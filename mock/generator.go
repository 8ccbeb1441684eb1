package mock

import (
	"context"

	"github.com/fwojciec/artdoc"
)

var _ artdoc.HTMLGenerator = (*HTMLGenerator)(nil)

// HTMLGenerator is a mock implementation of artdoc.HTMLGenerator.
type HTMLGenerator struct {
	GenerateHTMLFn func(ctx context.Context, article string) (string, error)
}

func (g *HTMLGenerator) GenerateHTML(ctx context.Context, article string) (string, error) {
	return g.GenerateHTMLFn(ctx, article)
}

var _ artdoc.ImageGenerator = (*ImageGenerator)(nil)

// ImageGenerator is a mock implementation of artdoc.ImageGenerator.
type ImageGenerator struct {
	GenerateImageFn func(ctx context.Context, prompt string) (*artdoc.Image, error)
}

func (g *ImageGenerator) GenerateImage(ctx context.Context, prompt string) (*artdoc.Image, error) {
	return g.GenerateImageFn(ctx, prompt)
}
