package rules

import (
	"slices"
	"strings"
)

// Candidate is a span accepted during collection, before overlap
// resolution.
type Candidate struct {
	Start   int
	End     int
	Text    string
	Keyword string // anchor the span was grown from
}

// Len returns the number of runes in the candidate span.
func (c Candidate) Len() int {
	return c.End - c.Start
}

func (c Candidate) overlaps(start, end int) bool {
	return max(c.Start, start) < min(c.End, end)
}

func (c Candidate) contains(start, end int) bool {
	return start >= c.Start && end <= c.End
}

// admit reports whether a new span may join the collected candidates.
// A span overlapping a collected candidate of equal or greater length is
// refused; a strictly longer one is admitted and left to resolve.
func admit(collected []Candidate, start, end int) bool {
	for _, c := range collected {
		if c.overlaps(start, end) && end-start <= c.Len() {
			return false
		}
	}
	return true
}

// resolve keeps non-overlapping candidates, preferring earlier starts and,
// at equal starts, longer spans. A candidate touching any position already
// taken is dropped whole. Single-word candidates that are exclusion terms
// are dropped. The result is ordered by start.
func resolve(candidates []Candidate, lex *Lexicon) []Candidate {
	if len(candidates) == 0 {
		return nil
	}

	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Candidate) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return b.Len() - a.Len()
	})

	var kept []Candidate
	covered := make(map[int]bool)
	for _, c := range sorted {
		taken := false
		for i := c.Start; i < c.End; i++ {
			if covered[i] {
				taken = true
				break
			}
		}
		if taken {
			continue
		}
		if len(strings.Fields(c.Text)) == 1 && lex.IsExclusion(c.Text) {
			continue
		}
		kept = append(kept, c)
		for i := c.Start; i < c.End; i++ {
			covered[i] = true
		}
	}

	slices.SortFunc(kept, func(a, b Candidate) int {
		return a.Start - b.Start
	})
	return kept
}
