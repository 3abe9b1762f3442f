package rules

import (
	"github.com/fwojciec/prodspan"
)

// Defaults for Annotator tuning.
const (
	DefaultLookahead = 30
	DefaultMaxWords  = 64
)

// Ensure Annotator implements prodspan.Annotator at compile time.
var _ prodspan.Annotator = (*Annotator)(nil)

// Annotator finds product-name spans around anchor terms.
// Annotator is safe for concurrent use by multiple goroutines.
type Annotator struct {
	lex       *Lexicon
	lookahead int
	maxWords  int
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithLookahead sets how many runes after a candidate word are scanned for
// prices and end signals. Defaults to DefaultLookahead.
func WithLookahead(n int) Option {
	return func(a *Annotator) {
		if n > 0 {
			a.lookahead = n
		}
	}
}

// WithMaxWords caps how many words a span may grow in each direction.
// Defaults to DefaultMaxWords.
func WithMaxWords(n int) Option {
	return func(a *Annotator) {
		if n > 0 {
			a.maxWords = n
		}
	}
}

// NewAnnotator creates an Annotator over lex.
func NewAnnotator(lex *Lexicon, opts ...Option) *Annotator {
	a := &Annotator{
		lex:       lex,
		lookahead: DefaultLookahead,
		maxWords:  DefaultMaxWords,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Lexicon returns the vocabulary the annotator matches against.
func (a *Annotator) Lexicon() *Lexicon {
	return a.lex
}

// Annotate returns non-overlapping PRODUCT entities ordered by start.
func (a *Annotator) Annotate(text string) []prodspan.Entity {
	resolved := resolve(a.Candidates(text), a.lex)
	if len(resolved) == 0 {
		return nil
	}

	entities := make([]prodspan.Entity, len(resolved))
	for i, c := range resolved {
		entities[i] = prodspan.Entity{Start: c.Start, End: c.End, Label: prodspan.LabelProduct}
	}
	return entities
}

// Candidates returns the spans collected around anchors before overlap
// resolution, in collection order.
func (a *Annotator) Candidates(text string) []Candidate {
	if text == "" {
		return nil
	}

	d := newDocument(text)
	matches := locate(d.folded, a.lex.anchors)

	var collected []Candidate
	for _, m := range matches {
		if covered(collected, m) {
			continue
		}

		lineStart, lineEnd := d.lines.bounds(m.start)
		start := a.expandLeft(d, m.start, lineStart)
		end := a.expandRight(d, m.end, lineEnd)
		start, end = trimSpan(d.text, start, end)

		if !a.acceptable(d, start, end, m) {
			continue
		}
		if !admit(collected, start, end) {
			continue
		}
		collected = append(collected, Candidate{
			Start:   start,
			End:     end,
			Text:    string(d.text[start:end]),
			Keyword: m.anchor.keyword,
		})
	}
	return collected
}

// covered reports whether an anchor match lies inside a collected span.
func covered(collected []Candidate, m anchorMatch) bool {
	for _, c := range collected {
		if c.contains(m.start, m.end) {
			return true
		}
	}
	return false
}
