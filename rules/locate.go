package rules

import "slices"

// anchorMatch is one word-bounded occurrence of an anchor in a text.
type anchorMatch struct {
	start, end int
	anchor     *anchor
}

// locate finds every word-bounded occurrence of every anchor in the folded
// text. Each anchor is scanned independently, so matches of different
// anchors may overlap. Matches are ordered by start; at equal starts the
// longer anchor comes first.
func locate(folded []rune, anchors []anchor) []anchorMatch {
	var matches []anchorMatch
	for i := range anchors {
		a := &anchors[i]
		for _, start := range findBounded(folded, a.folded) {
			matches = append(matches, anchorMatch{
				start:  start,
				end:    start + len(a.folded),
				anchor: a,
			})
		}
	}
	slices.SortStableFunc(matches, func(a, b anchorMatch) int {
		return a.start - b.start
	})
	return matches
}

// findBounded returns the start offsets of non-overlapping occurrences of
// needle in haystack that are not adjacent to a word rune on either side.
func findBounded(haystack, needle []rune) []int {
	n, m := len(haystack), len(needle)
	if m == 0 || m > n {
		return nil
	}

	var starts []int
	for i := 0; i+m <= n; {
		if haystack[i] != needle[0] || !slices.Equal(haystack[i:i+m], needle) {
			i++
			continue
		}
		leftOK := i == 0 || !isWordRune(haystack[i-1])
		rightOK := i+m == n || !isWordRune(haystack[i+m])
		if leftOK && rightOK {
			starts = append(starts, i)
			i += m
			continue
		}
		i++
	}
	return starts
}
