package mock

import "github.com/fwojciec/artdoc"

var _ artdoc.PlaceholderService = (*PlaceholderService)(nil)

// PlaceholderService is a mock implementation of artdoc.PlaceholderService.
type PlaceholderService struct {
	ExtractFn func(document string) ([]string, error)
	FindFn    func(document string) ([]artdoc.Placeholder, error)
	ResolveFn func(document string, references []string) (string, error)
}

func (s *PlaceholderService) Extract(document string) ([]string, error) {
	return s.ExtractFn(document)
}

func (s *PlaceholderService) Find(document string) ([]artdoc.Placeholder, error) {
	return s.FindFn(document)
}

func (s *PlaceholderService) Resolve(document string, references []string) (string, error) {
	return s.ResolveFn(document, references)
}

var _ artdoc.BodySplicer = (*BodySplicer)(nil)

// BodySplicer is a mock implementation of artdoc.BodySplicer.
type BodySplicer struct {
	SpliceIntoBodyFn func(template, content string) (string, error)
}

func (s *BodySplicer) SpliceIntoBody(template, content string) (string, error) {
	return s.SpliceIntoBodyFn(template, content)
}
