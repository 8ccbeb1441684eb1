// Package goldmark implements an offline artdoc.HTMLGenerator that renders
// Markdown articles with github.com/yuin/goldmark.
package goldmark

import (
	"bytes"
	"context"
	"strings"

	"github.com/fwojciec/artdoc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Ensure HTMLGenerator implements artdoc.HTMLGenerator at compile time.
var _ artdoc.HTMLGenerator = (*HTMLGenerator)(nil)

// HTMLGenerator renders Markdown to HTML without calling a model.
// Every Markdown image becomes a placeholder whose alt text is the caption.
type HTMLGenerator struct {
	md goldmark.Markdown
}

// NewHTMLGenerator creates a new HTMLGenerator with GFM extensions enabled.
func NewHTMLGenerator() *HTMLGenerator {
	return &HTMLGenerator{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
				parser.WithASTTransformers(
					util.Prioritized(placeholderTransformer{}, 100),
				),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
	}
}

// GenerateHTML renders article as an HTML fragment.
func (g *HTMLGenerator) GenerateHTML(ctx context.Context, article string) (string, error) {
	if strings.TrimSpace(article) == "" {
		return "", artdoc.Errorf(artdoc.EINVALID, "article required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := g.md.Convert([]byte(article), &buf); err != nil {
		return "", artdoc.Errorf(artdoc.EINTERNAL, "failed to render markdown: %v", err)
	}

	out := strings.TrimSpace(buf.String())
	if out == "" {
		return "", artdoc.Errorf(artdoc.EINTERNAL, "markdown rendered empty content")
	}
	return out, nil
}

// placeholderTransformer points every image at its positional placeholder.
type placeholderTransformer struct{}

func (placeholderTransformer) Transform(doc *ast.Document, _ text.Reader, _ parser.Context) {
	position := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if img, ok := n.(*ast.Image); ok {
			position++
			img.Destination = []byte(artdoc.PlaceholderName(position) + ".jpg")
		}
		return ast.WalkContinue, nil
	})
}
