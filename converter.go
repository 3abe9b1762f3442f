package prodspan

// Converter reduces HTML to plain text for annotation.
type Converter interface {
	// Convert transforms HTML content into plain text.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
