// Package prodspan bootstraps labeled training data for a product-name
// tagger. It scrapes shop pages, reduces them to plain text, and finds
// candidate product-name spans around a lexicon of anchor nouns using
// deterministic boundary-expansion rules.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/). The
// rule-based extractor itself lives in rules/.
package prodspan
