package prodspan

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title without the shop name (see CleanTitle).
	Title string

	// ContentHTML is the main content as clean HTML.
	// Scripts, navigation, headers, footers and forms have been removed.
	ContentHTML string

	// FullHTML is the whole document, cleaned where the extractor can.
	// It backs the fallback when ContentHTML reduces to too little text.
	FullHTML string
}

// Extractor selects the main content of an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}
