package goquery

import (
	"github.com/fwojciec/artdoc"
)

// Ensure Splicer implements artdoc.BodySplicer at compile time.
var _ artdoc.BodySplicer = (*Splicer)(nil)

// Splicer implements artdoc.BodySplicer.
type Splicer struct{}

// NewSplicer creates a new Splicer.
func NewSplicer() *Splicer {
	return &Splicer{}
}

// SpliceIntoBody replaces the template's body content with content.
func (s *Splicer) SpliceIntoBody(template, content string) (string, error) {
	return SpliceIntoBody(template, content)
}

// SpliceIntoBody parses template, removes every child of its <body> and
// appends the nodes parsed from content in their place. Returns ESTRUCTURAL
// if template has no <body> tag.
func SpliceIntoBody(template, content string) (string, error) {
	if !hasBodyTag(template) {
		return "", artdoc.Errorf(artdoc.ESTRUCTURAL, "template has no body section")
	}

	doc, err := parseFull(template)
	if err != nil {
		return "", err
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return "", artdoc.Errorf(artdoc.ESTRUCTURAL, "template has no body section")
	}

	nodes, err := parseFragment(content)
	if err != nil {
		return "", err
	}

	body.Empty()
	body.AppendNodes(nodes...)

	return render(doc)
}
