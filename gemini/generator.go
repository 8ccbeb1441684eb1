// Package gemini implements artdoc's model collaborators with Google Gemini:
// GenerateContent for HTML and Imagen through GenerateImages for illustrations.
package gemini

import (
	"context"

	"github.com/fwojciec/artdoc"
	"google.golang.org/genai"
)

// DefaultTextModel is used when no model is configured.
const DefaultTextModel = "gemini-2.5-flash"

// Ensure HTMLGenerator implements artdoc.HTMLGenerator at compile time.
var _ artdoc.HTMLGenerator = (*HTMLGenerator)(nil)

// HTMLGenerator implements artdoc.HTMLGenerator using Google Gemini.
type HTMLGenerator struct {
	client *genai.Client
	model  string
}

// NewHTMLGenerator creates a new HTMLGenerator. An empty model selects
// DefaultTextModel.
func NewHTMLGenerator(client *genai.Client, model string) *HTMLGenerator {
	if model == "" {
		model = DefaultTextModel
	}
	return &HTMLGenerator{client: client, model: model}
}

// GenerateHTML asks Gemini to mark up article with image placeholders.
func (g *HTMLGenerator) GenerateHTML(ctx context.Context, article string) (string, error) {
	if article == "" {
		return "", artdoc.Errorf(artdoc.EINVALID, "article required")
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: artdoc.BuildHTMLPrompt(article)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", artdoc.Errorf(artdoc.EINTERNAL, "gemini returned nil result")
	}

	html := artdoc.CleanGeneratedHTML(result.Text())
	if html == "" {
		return "", artdoc.Errorf(artdoc.EINTERNAL, "gemini returned empty content")
	}
	return html, nil
}

// BuildConfig returns the GenerateContentConfig for HTML generation.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.3)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: artdoc.HTMLSystemInstruction}},
		},
		Temperature: &temp,
	}
}
