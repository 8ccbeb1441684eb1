package artdoc

import "context"

// HTMLGenerator converts article text into HTML with image placeholders.
type HTMLGenerator interface {
	// GenerateHTML returns the article as an HTML fragment in which every
	// suggested illustration is an <img> whose alt text is a generation prompt.
	// Returns EINVALID if the article is empty.
	GenerateHTML(ctx context.Context, article string) (string, error)
}

// ImageGenerator creates an image from a text prompt.
type ImageGenerator interface {
	// GenerateImage returns a single generated image. Depending on the
	// provider the image carries either inline data or a URL to download.
	// Returns EINVALID if the prompt is empty.
	GenerateImage(ctx context.Context, prompt string) (*Image, error)
}
