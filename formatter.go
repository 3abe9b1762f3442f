package prodspan

import (
	"fmt"
	"strings"
)

// FormatEntities renders a record's entities one per line as
// "[start:end] text" for display. Records without entities render as an
// empty string.
func FormatEntities(rec AnnotatedRecord) string {
	if len(rec.Entities) == 0 {
		return ""
	}

	texts := SpanTexts(rec.Text, rec.Entities)
	lines := make([]string, 0, len(rec.Entities))
	for i, ent := range rec.Entities {
		lines = append(lines, fmt.Sprintf("[%d:%d] %s", ent.Start, ent.End, texts[i]))
	}
	return strings.Join(lines, "\n")
}

// FormatProducts renders unique product names as a bulleted list.
func FormatProducts(names []string) string {
	names = UniqueNames(names)
	if len(names) == 0 {
		return ""
	}

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, "- "+name)
	}
	return strings.Join(parts, "\n")
}
