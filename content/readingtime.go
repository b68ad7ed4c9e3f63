package content

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultWordsPerMinute is the reading speed used when the caller passes a
// non-positive wordsPerMinute.
const DefaultWordsPerMinute = 200

// EstimateReadingTime returns the estimated reading time of the rendered
// body markup in whole minutes, rounding up. Markup tags are stripped before
// counting words; empty or unparseable input yields 0.
func EstimateReadingTime(bodyMarkup string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	if strings.TrimSpace(bodyMarkup) == "" {
		return 0
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(bodyMarkup))
	if err != nil {
		return 0
	}
	words := len(strings.Fields(doc.Text()))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}
