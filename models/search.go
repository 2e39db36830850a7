package models

import "strings"

// tagQueryPrefix switches a search from station name to tag matching.
const tagQueryPrefix = "tag:"

// SearchQuery is a parsed user search.
type SearchQuery struct {
	// Term is the trimmed search text without the "tag:" prefix.
	Term string
	// ByTag reports whether Term should be matched against station tags.
	ByTag bool
	// Limit caps the number of returned stations.
	Limit int
}

// ParseSearchQuery turns raw user input into a [SearchQuery]. Input written as
// "tag:ambient" searches by tag, anything else by station name.
func ParseSearchQuery(raw string, limit int) SearchQuery {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(raw), tagQueryPrefix) {
		return SearchQuery{Term: strings.TrimSpace(raw[len(tagQueryPrefix):]), ByTag: true, Limit: limit}
	}
	return SearchQuery{Term: raw, Limit: limit}
}
