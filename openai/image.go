package openai

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/fwojciec/artdoc"
	"github.com/openai/openai-go"
)

// DefaultImageModel is used when no model is configured.
const DefaultImageModel = "dall-e-3"

// DefaultImageSize is used when no size is configured.
const DefaultImageSize = "1024x1024"

// Ensure ImageGenerator implements artdoc.ImageGenerator at compile time.
var _ artdoc.ImageGenerator = (*ImageGenerator)(nil)

// ImageGenerator implements artdoc.ImageGenerator using the images API.
type ImageGenerator struct {
	client openai.Client
	model  string
	size   string
}

// NewImageGenerator creates a new ImageGenerator. Empty model and size
// select DefaultImageModel and DefaultImageSize.
func NewImageGenerator(client openai.Client, model, size string) *ImageGenerator {
	if model == "" {
		model = DefaultImageModel
	}
	if size == "" {
		size = DefaultImageSize
	}
	return &ImageGenerator{client: client, model: model, size: size}
}

// GenerateImage generates a single image for prompt.
// DALL-E models answer with a hosted URL; newer models return base64 data.
func (g *ImageGenerator) GenerateImage(ctx context.Context, prompt string) (*artdoc.Image, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, artdoc.Errorf(artdoc.EINVALID, "image prompt required")
	}

	resp, err := g.client.Images.Generate(ctx, BuildImageParams(g.model, g.size, prompt))
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, artdoc.Errorf(artdoc.EINTERNAL, "openai returned no images")
	}

	data := resp.Data[0]
	img := &artdoc.Image{Prompt: prompt, URL: data.URL}
	if data.B64JSON != "" {
		decoded, err := base64.StdEncoding.DecodeString(data.B64JSON)
		if err != nil {
			return nil, artdoc.Errorf(artdoc.EINTERNAL, "invalid base64 image data: %v", err)
		}
		img.Data = decoded
	}
	if img.URL == "" && len(img.Data) == 0 {
		return nil, artdoc.Errorf(artdoc.EINTERNAL, "openai returned an empty image")
	}
	return img, nil
}

// BuildImageParams returns the image generation request for prompt.
func BuildImageParams(model, size, prompt string) openai.ImageGenerateParams {
	params := openai.ImageGenerateParams{
		Prompt: prompt,
		Model:  openai.ImageModel(model),
		N:      openai.Int(1),
		Size:   openai.ImageGenerateParamsSize(size),
	}
	// Only DALL-E models accept a response format.
	if strings.HasPrefix(model, "dall-e") {
		params.ResponseFormat = openai.ImageGenerateParamsResponseFormatURL
	}
	return params
}
