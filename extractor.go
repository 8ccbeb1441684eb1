package artdoc

// ExtractResult holds the main content extracted from a web page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the article body as clean HTML with navigation,
	// footers and other boilerplate removed.
	ContentHTML string
}

// Extractor pulls the article out of a full web page.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// Returns ENOTFOUND if the page has no recognizable article.
	Extract(html string) (*ExtractResult, error)
}
