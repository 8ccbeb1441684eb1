package artdoc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. Image elements are
	// kept as Markdown images so captions and references survive.
	Convert(html string) (string, error)
}
