package mock

import "github.com/fwojciec/artdoc"

var _ artdoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of artdoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
