package mock

import "github.com/fwojciec/prodspan"

var (
	_ prodspan.Extractor = (*Extractor)(nil)
	_ prodspan.Converter = (*Converter)(nil)
)

// Extractor is a mock implementation of prodspan.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*prodspan.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*prodspan.ExtractResult, error) {
	return e.ExtractFn(html)
}

// Converter is a mock implementation of prodspan.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
