package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/artdoc"
)

const (
	imageSelector = "img"
	captionAttr   = "alt"
	referenceAttr = "src"
)

// Ensure PlaceholderService implements artdoc.PlaceholderService at compile time.
var _ artdoc.PlaceholderService = (*PlaceholderService)(nil)

// PlaceholderService implements artdoc.PlaceholderService.
// The zero value is ready to use.
type PlaceholderService struct{}

// NewPlaceholderService creates a new PlaceholderService.
func NewPlaceholderService() *PlaceholderService {
	return &PlaceholderService{}
}

// Extract returns the caption of every image in document order.
func (s *PlaceholderService) Extract(document string) ([]string, error) {
	return ExtractCaptions(document)
}

// Find returns every image's caption and reference in document order.
func (s *PlaceholderService) Find(document string) ([]artdoc.Placeholder, error) {
	return FindPlaceholders(document)
}

// Resolve rewrites image references positionally.
func (s *PlaceholderService) Resolve(document string, references []string) (string, error) {
	return ResolvePlaceholders(document, references)
}

// ExtractCaptions returns the alt text of every <img> in document, in
// depth-first pre-order. Images without alt yield an empty string, so the
// result always has one entry per image.
func ExtractCaptions(document string) ([]string, error) {
	placeholders, err := FindPlaceholders(document)
	if err != nil {
		return nil, err
	}

	captions := make([]string, len(placeholders))
	for i, p := range placeholders {
		captions[i] = p.Caption
	}
	return captions, nil
}

// FindPlaceholders returns the caption and reference of every <img> in
// document order. Missing attributes are empty strings.
func FindPlaceholders(document string) ([]artdoc.Placeholder, error) {
	doc, err := parseDocument(document)
	if err != nil {
		return nil, err
	}

	images := doc.Find(imageSelector)
	placeholders := make([]artdoc.Placeholder, 0, images.Length())
	images.Each(func(_ int, sel *goquery.Selection) {
		placeholders = append(placeholders, artdoc.Placeholder{
			Caption:   sel.AttrOr(captionAttr, ""),
			Reference: sel.AttrOr(referenceAttr, ""),
		})
	})
	return placeholders, nil
}

// ResolvePlaceholders returns document with the src of the Nth <img> set to
// references[N]. Images past the end of references, or paired with an empty
// reference, keep their src. Extra references are ignored.
//
// The result is re-serialized from the parse tree, so untouched markup may
// differ from the input in attribute quoting and void-element syntax.
func ResolvePlaceholders(document string, references []string) (string, error) {
	doc, err := parseDocument(document)
	if err != nil {
		return "", err
	}

	images := doc.Find(imageSelector)
	n := min(images.Length(), len(references))
	for i := 0; i < n; i++ {
		if references[i] == "" {
			continue
		}
		images.Eq(i).SetAttr(referenceAttr, references[i])
	}

	return render(doc)
}
