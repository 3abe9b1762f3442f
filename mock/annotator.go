package mock

import "github.com/fwojciec/prodspan"

var _ prodspan.Annotator = (*Annotator)(nil)

// Annotator is a mock implementation of prodspan.Annotator.
type Annotator struct {
	AnnotateFn func(text string) []prodspan.Entity
}

func (a *Annotator) Annotate(text string) []prodspan.Entity {
	return a.AnnotateFn(text)
}
