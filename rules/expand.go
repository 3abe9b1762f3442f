package rules

import (
	"regexp"
	"strings"
	"unicode"
)

// priceRe matches a currency symbol or code followed by an amount.
var priceRe = regexp.MustCompile(`(?i)(?:[$€£₹]|\b(?:kr|rm|php|zar|sgd|aud|cad|nzd|usd|eur|gbp))\s?\d[\d,.]*`)

// endSignals mark the start of price blocks and buttons after a name.
var endSignals = []string{
	"add to cart",
	"view product",
	"choose options",
	"regular price",
	"sale price",
	"unit price",
	"save",
}

// document is the per-call view of an input text.
type document struct {
	text   []rune
	folded []rune
	lines  lineIndex
}

func newDocument(text string) *document {
	runes := []rune(text)
	folded := make([]rune, len(runes))
	for i, r := range runes {
		folded[i] = unicode.ToLower(r)
	}
	return &document{
		text:   runes,
		folded: folded,
		lines:  newLineIndex(runes),
	}
}

// wordBefore returns the nearest word ending at or before pos that lies
// entirely within [lineStart, pos).
func (d *document) wordBefore(pos, lineStart int) (start, end int, ok bool) {
	i := pos
	for i > lineStart && !isWordRune(d.text[i-1]) {
		i--
	}
	if i == lineStart {
		return 0, 0, false
	}
	end = i
	for i > lineStart && isWordRune(d.text[i-1]) {
		i--
	}
	return i, end, true
}

// wordAfter returns the nearest word starting at or after pos that lies
// entirely within [pos, lineEnd).
func (d *document) wordAfter(pos, lineEnd int) (start, end int, ok bool) {
	i := pos
	for i < lineEnd && !isWordRune(d.text[i]) {
		i++
	}
	if i == lineEnd {
		return 0, 0, false
	}
	start = i
	for i < lineEnd && isWordRune(d.text[i]) {
		i++
	}
	return start, i, true
}

// expandLeft grows a span start leftward word by word.
func (a *Annotator) expandLeft(d *document, pos, lineStart int) int {
	start := pos
	for steps := 0; start > lineStart && steps < a.maxWords; steps++ {
		ws, we, ok := d.wordBefore(start, lineStart)
		if !ok {
			break
		}
		if a.stopsLeft(d.text[ws:we], d.folded[ws:we]) {
			break
		}
		start = ws
		for start > lineStart && unicode.IsSpace(d.text[start-1]) {
			start--
		}
	}
	return start
}

func (a *Annotator) stopsLeft(word, folded []rune) bool {
	if a.lex.isExclusionRunes(folded) {
		return true
	}
	if unicode.IsLower(word[0]) && !allDigits(word) {
		return true
	}
	return len(word) == 1 && unicode.IsPunct(word[0])
}

// expandRight grows a span end rightward word by word.
func (a *Annotator) expandRight(d *document, pos, lineEnd int) int {
	end := pos
	for steps := 0; end < lineEnd && steps < a.maxWords; steps++ {
		ws, we, ok := d.wordAfter(end, lineEnd)
		if !ok {
			break
		}
		if a.stopsRight(d, end, ws, we) {
			break
		}
		end = we
	}
	return end
}

func (a *Annotator) stopsRight(d *document, end, ws, we int) bool {
	word, folded := d.text[ws:we], d.folded[ws:we]
	if a.lex.isExclusionRunes(folded) {
		return true
	}
	if unicode.IsLower(word[0]) && !allDigits(word) && !a.lex.isAttributeRunes(folded) {
		return true
	}

	windowEnd := min(we+a.lookahead, len(d.folded))
	window := string(d.folded[we:windowEnd])
	if priceRe.MatchString(window) {
		return true
	}
	for _, signal := range endSignals {
		if strings.Contains(window, signal) {
			return true
		}
	}

	return strings.Contains(string(d.text[end:ws]), "\n\n")
}

// trimSpan drops whitespace, punctuation and symbols from both ends.
func trimSpan(text []rune, start, end int) (int, int) {
	for start < end && isTrimRune(text[start]) {
		start++
	}
	for end > start && isTrimRune(text[end-1]) {
		end--
	}
	return start, end
}

func isTrimRune(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// acceptable reports whether a trimmed span may become a candidate.
func (a *Annotator) acceptable(d *document, start, end int, m anchorMatch) bool {
	if end-start < 3 {
		return false
	}
	span, folded := d.text[start:end], d.folded[start:end]

	keyword := []rune(m.anchor.keyword)
	if string(folded) == string(m.anchor.folded) && unicode.IsLower(keyword[0]) && len(keyword) < 5 {
		return false
	}
	if a.lex.isExclusionRunes(folded) {
		return false
	}
	if allDigits(span) || allBlankOrPunct(span) {
		return false
	}
	return hasLetter(span)
}

func allDigits(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func allBlankOrPunct(runes []rune) bool {
	for _, r := range runes {
		if !isTrimRune(r) {
			return false
		}
	}
	return true
}

func hasLetter(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
