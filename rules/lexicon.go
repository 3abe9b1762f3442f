// Package rules implements the rule-based product-name extractor.
//
// Given plain text and a Lexicon of anchor nouns ("sofa", "coffee table")
// and exclusion terms (UI, pricing and stop-word vocabulary), it locates
// every word-bounded anchor occurrence, grows a span word by word to the
// left and right of it within the anchor's line, filters the candidates and
// resolves overlaps in favour of longer spans.
//
// All offsets are rune offsets. Case-insensitive matching runs on a copy of
// the text folded rune by rune with unicode.ToLower, so the folded copy has
// exactly the same length and positions as the original.
package rules

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"
	"unicode"
)

// Lexicon holds the anchor and exclusion vocabulary.
// A Lexicon is immutable after construction and safe for concurrent use.
type Lexicon struct {
	anchors    []anchor
	exclusions map[string]struct{}
	attributes map[string]struct{}
	skipped    []SkippedAnchor
}

// anchor is a precompiled anchor matcher.
type anchor struct {
	keyword string // as configured, used for the standalone-keyword rule
	folded  []rune
}

// SkippedAnchor records an anchor that could not be compiled into a
// word-bounded matcher.
type SkippedAnchor struct {
	Anchor string
	Reason string
}

type lexiconConfig struct {
	logger     *slog.Logger
	attributes []string
}

// LexiconOption configures a Lexicon.
type LexiconOption func(*lexiconConfig)

// WithLogger sets the logger used to report skipped anchors.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) LexiconOption {
	return func(c *lexiconConfig) {
		c.logger = logger
	}
}

// WithAttributes sets the lowercase words allowed to continue a name to the
// right of an anchor (sizes, colors, materials).
func WithAttributes(words []string) LexiconOption {
	return func(c *lexiconConfig) {
		c.attributes = words
	}
}

// NewLexicon compiles anchors and exclusions.
//
// Anchors are trimmed, have inner whitespace collapsed to single spaces and
// are deduplicated case-insensitively (first spelling wins). A malformed
// anchor is skipped and logged; it never fails construction.
func NewLexicon(anchors, exclusions []string, opts ...LexiconOption) *Lexicon {
	cfg := lexiconConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	lex := &Lexicon{
		exclusions: make(map[string]struct{}, len(exclusions)),
		attributes: make(map[string]struct{}, len(cfg.attributes)),
	}

	seen := make(map[string]bool, len(anchors))
	for _, raw := range anchors {
		term := strings.Join(strings.Fields(raw), " ")
		if reason := checkAnchor(raw, term); reason != "" {
			lex.skipped = append(lex.skipped, SkippedAnchor{Anchor: raw, Reason: reason})
			cfg.logger.Warn("skipping anchor", "anchor", raw, "reason", reason)
			continue
		}
		folded := fold(term)
		key := string(folded)
		if seen[key] {
			continue
		}
		seen[key] = true
		lex.anchors = append(lex.anchors, anchor{keyword: term, folded: folded})
	}

	slices.SortStableFunc(lex.anchors, func(a, b anchor) int {
		if c := cmp.Compare(len(b.folded), len(a.folded)); c != 0 {
			return c
		}
		return cmp.Compare(string(a.folded), string(b.folded))
	})

	for _, term := range exclusions {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		lex.exclusions[foldString(term)] = struct{}{}
	}
	for _, word := range cfg.attributes {
		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		lex.attributes[foldString(word)] = struct{}{}
	}

	return lex
}

// checkAnchor returns why an anchor cannot be matched with word boundaries,
// or "" if it can.
func checkAnchor(raw, term string) string {
	if term == "" {
		return "empty anchor"
	}
	if strings.ContainsAny(raw, "\n\r") {
		return "anchor spans multiple lines"
	}
	runes := []rune(term)
	if !isWordRune(runes[0]) || !isWordRune(runes[len(runes)-1]) {
		return "anchor must start and end with a letter or digit"
	}
	return ""
}

// Anchors returns the anchor terms, longest first.
func (l *Lexicon) Anchors() []string {
	out := make([]string, len(l.anchors))
	for i, a := range l.anchors {
		out[i] = a.keyword
	}
	return out
}

// Skipped returns the anchors rejected during construction.
func (l *Lexicon) Skipped() []SkippedAnchor {
	return slices.Clone(l.skipped)
}

// IsExclusion reports whether a word or phrase is an exclusion term.
// Matching is case-insensitive and exact.
func (l *Lexicon) IsExclusion(s string) bool {
	_, ok := l.exclusions[foldString(s)]
	return ok
}

// IsAttribute reports whether a word may continue a name to the right even
// though it starts lowercase.
func (l *Lexicon) IsAttribute(s string) bool {
	_, ok := l.attributes[foldString(s)]
	return ok
}

func (l *Lexicon) isExclusionRunes(folded []rune) bool {
	_, ok := l.exclusions[string(folded)]
	return ok
}

func (l *Lexicon) isAttributeRunes(folded []rune) bool {
	_, ok := l.attributes[string(folded)]
	return ok
}

// fold lowercases s one rune at a time. The result always has the same
// number of runes as s, which keeps offsets into the folded copy valid for
// the original.
func fold(s string) []rune {
	runes := []rune(s)
	for i, r := range runes {
		runes[i] = unicode.ToLower(r)
	}
	return runes
}

func foldString(s string) string {
	return string(fold(s))
}

// isWordRune reports whether r belongs to a word: a letter, a number or an
// underscore.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}
