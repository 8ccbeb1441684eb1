package artdoc

import "strconv"

// Placeholder is an image element standing in for a not-yet-generated image.
// Placeholders have no identity beyond their position in document order.
type Placeholder struct {
	// Caption is the descriptive alt text used as the generation prompt.
	// Empty when the element has no alt attribute.
	Caption string

	// Reference is the element's src attribute: a provisional token before
	// generation, a local file name after.
	Reference string
}

// PlaceholderService reads and rewrites image placeholders in HTML documents.
// Implementations must be stateless and safe for concurrent use.
type PlaceholderService interface {
	// Extract returns the caption of every image element in document order.
	// Missing captions are returned as empty strings. The document is never
	// modified and malformed markup is tolerated.
	Extract(document string) ([]string, error)

	// Find returns the caption and reference of every image element in
	// document order.
	Find(document string) ([]Placeholder, error)

	// Resolve returns a copy of document in which the Nth image element's
	// reference is replaced by references[N]. Elements without a matching
	// entry, or whose entry is empty, keep their original reference.
	// Extra entries are ignored. Captions are never changed.
	Resolve(document string, references []string) (string, error)
}

// BodySplicer composes an article into a template page.
type BodySplicer interface {
	// SpliceIntoBody replaces all children of the template's <body> with
	// the nodes of content. Returns ESTRUCTURAL if the template has no body.
	SpliceIntoBody(template, content string) (string, error)
}

// PlaceholderName returns the base file name (without extension) for the
// image generated for the placeholder at the given 1-based position.
func PlaceholderName(position int) string {
	return "image_placeholder_" + strconv.Itoa(position)
}
