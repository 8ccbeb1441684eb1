// Package goquery implements placeholder extraction, placeholder resolution
// and template splicing on top of goquery and the HTML5 parser.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artdoc"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// parseDocument parses document either as a full page or as a body
// fragment. Every operation goes through here so that image positions
// agree between extraction and resolution.
func parseDocument(document string) (*goquery.Document, error) {
	if isFullDocument(document) {
		return parseFull(document)
	}

	nodes, err := parseFragment(document)
	if err != nil {
		return nil, err
	}

	// Fragments hang off a bare document node so serialization renders
	// exactly the parsed nodes, without synthesized <html> or <body>.
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// parseFull parses document as a complete page.
func parseFull(document string) (*goquery.Document, error) {
	root, err := html.ParseWithOptions(strings.NewReader(document), html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, artdoc.Errorf(artdoc.EINVALID, "failed to parse HTML: %v", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// parseFragment parses content as it would appear inside <body>.
//
// Both parse paths disable scripting so <noscript> content is parsed as
// markup and images inside it count as placeholders.
func parseFragment(content string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragmentWithOptions(strings.NewReader(content), context, html.ParseOptionEnableScripting(false))
	if err != nil {
		return nil, artdoc.Errorf(artdoc.EINVALID, "failed to parse HTML: %v", err)
	}
	return nodes, nil
}

// isFullDocument reports whether document carries a doctype or any of the
// <html>, <head> or <body> tags.
func isFullDocument(document string) bool {
	return scanTags(document, func(tt html.TokenType, name string) bool {
		if tt == html.DoctypeToken {
			return true
		}
		return name == "html" || name == "head" || name == "body"
	})
}

// hasBodyTag reports whether document contains an explicit <body> start tag.
// The HTML5 parser always synthesizes a body, so this has to be decided on
// the token stream.
func hasBodyTag(document string) bool {
	return scanTags(document, func(tt html.TokenType, name string) bool {
		return tt != html.DoctypeToken && name == "body"
	})
}

// scanTags tokenizes document and returns true as soon as match does.
// Only doctype and start tag tokens are offered to match.
func scanTags(document string, match func(tt html.TokenType, name string) bool) bool {
	z := html.NewTokenizer(strings.NewReader(document))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return false
		case html.DoctypeToken:
			if match(tt, "") {
				return true
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if match(tt, strings.ToLower(string(name))) {
				return true
			}
		}
	}
}

// render serializes a parsed document back to HTML.
func render(doc *goquery.Document) (string, error) {
	out, err := doc.Html()
	if err != nil {
		return "", artdoc.Errorf(artdoc.EINTERNAL, "failed to render HTML: %v", err)
	}
	return out, nil
}
