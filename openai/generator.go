// Package openai implements artdoc's model collaborators with the official
// openai-go SDK: chat completions for HTML and the images API for
// illustrations. Any OpenAI-compatible endpoint works via option.WithBaseURL.
package openai

import (
	"context"

	"github.com/fwojciec/artdoc"
	"github.com/openai/openai-go"
)

// DefaultTextModel is used when no model is configured.
const DefaultTextModel = "gpt-4o"

const (
	temperature = 0.3
	maxTokens   = 2000
)

// Ensure HTMLGenerator implements artdoc.HTMLGenerator at compile time.
var _ artdoc.HTMLGenerator = (*HTMLGenerator)(nil)

// HTMLGenerator implements artdoc.HTMLGenerator using chat completions.
type HTMLGenerator struct {
	client openai.Client
	model  string
}

// NewHTMLGenerator creates a new HTMLGenerator. An empty model selects
// DefaultTextModel.
func NewHTMLGenerator(client openai.Client, model string) *HTMLGenerator {
	if model == "" {
		model = DefaultTextModel
	}
	return &HTMLGenerator{client: client, model: model}
}

// GenerateHTML asks the model to mark up article with image placeholders.
func (g *HTMLGenerator) GenerateHTML(ctx context.Context, article string) (string, error) {
	if article == "" {
		return "", artdoc.Errorf(artdoc.EINVALID, "article required")
	}

	resp, err := g.client.Chat.Completions.New(ctx, BuildParams(g.model, article))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", artdoc.Errorf(artdoc.EINTERNAL, "openai returned no choices")
	}

	html := artdoc.CleanGeneratedHTML(resp.Choices[0].Message.Content)
	if html == "" {
		return "", artdoc.Errorf(artdoc.EINTERNAL, "openai returned empty content")
	}
	return html, nil
}

// BuildParams returns the chat completion request for article.
func BuildParams(model, article string) openai.ChatCompletionNewParams {
	return openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(artdoc.HTMLSystemInstruction),
			openai.UserMessage(artdoc.BuildHTMLPrompt(article)),
		},
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
	}
}
