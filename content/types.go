// Package content derives presentation metadata from a corpus of published
// items: ranked related-item lists, heading trees with stable anchors,
// reading-time estimates, and relative date labels. Every function is pure
// and total: missing or empty input degrades to zero values, never errors,
// so callers may invoke them concurrently across a whole corpus.
package content

import "time"

// Item is one published article or note. Slug is the identity key and must
// be unique within a corpus; titles may collide. Body holds the rendered
// HTML markup produced by the ingestion pipeline and is treated as read-only.
type Item struct {
	Slug      string
	Title     string
	Tags      []string
	Category  string
	Date      time.Time
	Excerpt   string
	Thumbnail string
	Body      string
}

// Related is one entry in a related-items list. Fields are copied from the
// candidate Item; Similarity is in [0, 1] and 0 for backfilled entries.
type Related struct {
	Slug        string
	Title       string
	Excerpt     string
	Tags        []string
	Date        time.Time
	ReadingTime int
	Similarity  float64
}

// HeadingNode is one node of a document's heading tree. ID is unique within
// the document and doubles as the in-page anchor target.
type HeadingNode struct {
	ID       string
	Title    string
	Level    int
	Children []*HeadingNode
}
