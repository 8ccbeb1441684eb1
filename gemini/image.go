package gemini

import (
	"context"
	"strconv"
	"strings"

	"github.com/fwojciec/artdoc"
	"google.golang.org/genai"
)

// DefaultImageModel is used when no model is configured.
const DefaultImageModel = "imagen-4.0-generate-001"

// Ensure ImageGenerator implements artdoc.ImageGenerator at compile time.
var _ artdoc.ImageGenerator = (*ImageGenerator)(nil)

// ImageGenerator implements artdoc.ImageGenerator using Imagen.
type ImageGenerator struct {
	client      *genai.Client
	model       string
	aspectRatio string
}

// NewImageGenerator creates a new ImageGenerator. The size uses the
// "WIDTHxHEIGHT" form shared with other providers and is mapped to the
// closest supported aspect ratio.
func NewImageGenerator(client *genai.Client, model, size string) *ImageGenerator {
	if model == "" {
		model = DefaultImageModel
	}
	return &ImageGenerator{client: client, model: model, aspectRatio: AspectRatio(size)}
}

// GenerateImage generates a single image for prompt.
func (g *ImageGenerator) GenerateImage(ctx context.Context, prompt string) (*artdoc.Image, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, artdoc.Errorf(artdoc.EINVALID, "image prompt required")
	}

	resp, err := g.client.Models.GenerateImages(ctx, g.model, prompt, BuildImageConfig(g.aspectRatio))
	if err != nil {
		return nil, err
	}
	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, artdoc.Errorf(artdoc.EINTERNAL, "gemini returned no images")
	}

	generated := resp.GeneratedImages[0]
	if generated.Image == nil || len(generated.Image.ImageBytes) == 0 {
		if generated.RAIFilteredReason != "" {
			return nil, artdoc.Errorf(artdoc.EINTERNAL, "image filtered: %s", generated.RAIFilteredReason)
		}
		return nil, artdoc.Errorf(artdoc.EINTERNAL, "gemini returned an empty image")
	}

	return &artdoc.Image{
		Prompt:   prompt,
		Data:     generated.Image.ImageBytes,
		MIMEType: generated.Image.MIMEType,
	}, nil
}

// BuildImageConfig returns the GenerateImagesConfig for a single image.
func BuildImageConfig(aspectRatio string) *genai.GenerateImagesConfig {
	return &genai.GenerateImagesConfig{
		NumberOfImages:   1,
		AspectRatio:      aspectRatio,
		OutputMIMEType:   "image/png",
		IncludeRAIReason: true,
	}
}

// AspectRatio maps a "WIDTHxHEIGHT" size to an Imagen aspect ratio:
// square sizes to 1:1, landscape to 16:9 and portrait to 9:16.
// Malformed or empty sizes return "" so the model default applies.
func AspectRatio(size string) string {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(size)), "x")
	if !ok {
		return ""
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return ""
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return ""
	}

	switch {
	case width == height:
		return "1:1"
	case width > height:
		return "16:9"
	default:
		return "9:16"
	}
}
