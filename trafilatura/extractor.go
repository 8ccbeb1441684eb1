// Package trafilatura extracts the main article from web pages using
// github.com/markusmobius/go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/artdoc"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements artdoc.Extractor at compile time.
var _ artdoc.Extractor = (*Extractor)(nil)

// Extractor pulls the article body out of a fetched web page.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor. Images are kept so an article's
// existing figures can be re-illustrated.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
			IncludeImages:  true,
			IncludeLinks:   true,
		},
	}
}

// Extract returns the page title and article HTML.
// Returns ENOTFOUND if no article content was recognized.
func (e *Extractor) Extract(rawHTML string) (*artdoc.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, artdoc.Errorf(artdoc.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, artdoc.Errorf(artdoc.ENOTFOUND, "no article content found: %v", err)
	}
	if result == nil || result.ContentNode == nil {
		return nil, artdoc.Errorf(artdoc.ENOTFOUND, "no article content found")
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return nil, artdoc.Errorf(artdoc.EINTERNAL, "failed to render article: %v", err)
	}

	return &artdoc.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		ContentHTML: contentHTML,
	}, nil
}

func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
