package prodspan

import (
	"bytes"
	"encoding/json"
	"strings"
)

// LabelProduct is the category tag attached to every extracted span.
const LabelProduct = "PRODUCT"

// Entity is a labeled span of a text. Start and End are rune (code point)
// offsets, End exclusive, matching the character offsets the downstream
// tagger expects.
//
// Entities encode to JSON as a [start, end, label] triple.
type Entity struct {
	Start int
	End   int
	Label string
}

// Len returns the number of runes covered by the entity.
func (e Entity) Len() int {
	return e.End - e.Start
}

// MarshalJSON encodes the entity as a [start, end, label] triple.
func (e Entity) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{e.Start, e.End, e.Label})
}

// UnmarshalJSON decodes a [start, end, label] triple.
// Anything else is rejected with EINVALID rather than coerced.
func (e *Entity) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Errorf(EINVALID, "entity must be a [start, end, label] array: %s", truncate(string(data), 40))
	}
	if len(raw) != 3 {
		return Errorf(EINVALID, "entity must have 3 elements, got %d", len(raw))
	}

	var start, end int
	if err := decodeStrict(raw[0], &start); err != nil {
		return Errorf(EINVALID, "entity start must be an integer: %s", raw[0])
	}
	if err := decodeStrict(raw[1], &end); err != nil {
		return Errorf(EINVALID, "entity end must be an integer: %s", raw[1])
	}
	var label string
	if err := json.Unmarshal(raw[2], &label); err != nil {
		return Errorf(EINVALID, "entity label must be a string: %s", raw[2])
	}

	e.Start, e.End, e.Label = start, end, label
	return nil
}

// decodeStrict decodes an integer without accepting floats or strings.
func decodeStrict(data json.RawMessage, v *int) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == '"' {
		return Errorf(EINVALID, "not a number")
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var n json.Number
	if err := dec.Decode(&n); err != nil {
		return err
	}
	i, err := n.Int64()
	if err != nil {
		return err
	}
	*v = int(i)
	return nil
}

// Annotator finds labeled spans in plain text.
type Annotator interface {
	// Annotate returns non-overlapping entities ordered by start offset.
	// Text without any match yields an empty result, never an error.
	Annotate(text string) []Entity
}

// ValidateEntities checks entities against the text they were derived from:
// offsets must satisfy 0 <= start < end <= len(text) in runes, labels must be
// set, entities must be strictly ascending and must not overlap. When
// singleLine is true no entity may contain a newline.
//
// Violations are reported as EINTERNAL for annotator output checks; callers
// validating external records should translate the code as needed.
func ValidateEntities(text string, entities []Entity, singleLine bool) error {
	runes := []rune(text)
	prevEnd := -1
	prevStart := -1
	for i, ent := range entities {
		if ent.Start < 0 || ent.Start >= ent.End || ent.End > len(runes) {
			return Errorf(EINTERNAL, "entity %d has invalid offsets [%d, %d) for text of length %d", i, ent.Start, ent.End, len(runes))
		}
		if ent.Label == "" {
			return Errorf(EINTERNAL, "entity %d has no label", i)
		}
		if ent.Start <= prevStart {
			return Errorf(EINTERNAL, "entity %d is out of order", i)
		}
		if ent.Start < prevEnd {
			return Errorf(EINTERNAL, "entity %d overlaps previous entity", i)
		}
		if singleLine && strings.ContainsRune(string(runes[ent.Start:ent.End]), '\n') {
			return Errorf(EINTERNAL, "entity %d crosses a line break", i)
		}
		prevStart, prevEnd = ent.Start, ent.End
	}
	return nil
}

// SpanTexts returns the text covered by each entity.
// Entities with out-of-range offsets produce an empty string.
func SpanTexts(text string, entities []Entity) []string {
	runes := []rune(text)
	out := make([]string, 0, len(entities))
	for _, ent := range entities {
		if ent.Start < 0 || ent.End > len(runes) || ent.Start >= ent.End {
			out = append(out, "")
			continue
		}
		out = append(out, string(runes[ent.Start:ent.End]))
	}
	return out
}

// UniqueNames trims names and removes blanks and duplicates,
// keeping the first occurrence order.
func UniqueNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
