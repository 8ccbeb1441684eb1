package mock

import "github.com/fwojciec/artdoc"

var _ artdoc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of artdoc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*artdoc.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*artdoc.ExtractResult, error) {
	return e.ExtractFn(html)
}
