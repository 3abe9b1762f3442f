package prodspan

import "strings"

// titleSeparators split a page title from the shop name appended to it.
var titleSeparators = []string{" | ", " - ", " – ", " — ", " :: "}

// CleanTitle strips a trailing or leading shop name from a page title, so
// "Oslo Chair | Nordic Home" with siteName "Nordic Home" becomes
// "Oslo Chair". Titles that consist only of the shop name are kept.
func CleanTitle(title, siteName string) string {
	title = strings.TrimSpace(title)
	siteName = strings.TrimSpace(siteName)
	if siteName == "" {
		return title
	}

	for _, sep := range titleSeparators {
		if head, tail, ok := cutLast(title, sep); ok && strings.EqualFold(strings.TrimSpace(tail), siteName) {
			if head = strings.TrimSpace(head); head != "" {
				return head
			}
		}
		if head, tail, ok := strings.Cut(title, sep); ok && strings.EqualFold(strings.TrimSpace(head), siteName) {
			if tail = strings.TrimSpace(tail); tail != "" {
				return tail
			}
		}
	}
	return title
}

func cutLast(s, sep string) (before, after string, found bool) {
	if i := strings.LastIndex(s, sep); i >= 0 {
		return s[:i], s[i+len(sep):], true
	}
	return s, "", false
}
