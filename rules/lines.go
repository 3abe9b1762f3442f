package rules

import "sort"

// lineIndex maps offsets to the bounds of the line containing them.
type lineIndex struct {
	starts []int
	length int
}

func newLineIndex(text []rune) lineIndex {
	starts := []int{0}
	for i, r := range text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{starts: starts, length: len(text)}
}

// bounds returns the start of the line containing offset and the offset of
// its terminating newline, or the text length for the last line.
func (idx lineIndex) bounds(offset int) (start, end int) {
	i := sort.Search(len(idx.starts), func(i int) bool {
		return idx.starts[i] > offset
	}) - 1
	if i < 0 {
		i = 0
	}
	start = idx.starts[i]
	if i+1 < len(idx.starts) {
		return start, idx.starts[i+1] - 1
	}
	return start, idx.length
}
