package content

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DefaultMaxHeadingDepth is the deepest heading level included when the
// caller passes a non-positive maxDepth.
const DefaultMaxHeadingDepth = 4

var (
	nonAnchorChars = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// BuildHeadingTree parses the rendered body markup and returns the forest of
// headings up to maxDepth, nested by level in document order. A heading that
// skips levels (an h4 directly under an h2) still nests under the nearest
// shallower heading. Empty or unparseable input yields an empty forest.
func BuildHeadingTree(bodyMarkup string, maxDepth int) []*HeadingNode {
	if strings.TrimSpace(bodyMarkup) == "" {
		return nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(bodyMarkup))
	if err != nil {
		return nil
	}

	var roots []*HeadingNode
	var stack []*HeadingNode
	doc.Find(headingSelector(maxDepth)).Each(func(i int, s *goquery.Selection) {
		level := headingLevel(goquery.NodeName(s))
		if level == 0 {
			return
		}
		node := &HeadingNode{
			ID:    anchorID(i, s.Text(), s.AttrOr("id", "")),
			Title: strings.TrimSpace(s.Text()),
			Level: level,
		}
		for len(stack) > 0 && stack[len(stack)-1].Level >= level {
			stack = stack[:len(stack)-1]
		}
		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
	})
	return roots
}

// EnsureHeadingIDs returns bodyMarkup with anchor identifiers set on every
// heading up to maxDepth. Identifiers come from the same generator as
// BuildHeadingTree, over the same level-filtered selection, so TOC links and
// in-document anchors always agree; headings that already carry an id keep
// it, which makes the operation idempotent. Unparseable input is returned
// unchanged.
func EnsureHeadingIDs(bodyMarkup string, maxDepth int) string {
	if strings.TrimSpace(bodyMarkup) == "" {
		return bodyMarkup
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(bodyMarkup))
	if err != nil {
		return bodyMarkup
	}
	doc.Find(headingSelector(maxDepth)).Each(func(i int, s *goquery.Selection) {
		s.SetAttr("id", anchorID(i, s.Text(), s.AttrOr("id", "")))
	})
	out, err := doc.Find("body").Html()
	if err != nil {
		return bodyMarkup
	}
	return out
}

// anchorID returns the identifier for the i-th selected heading. An existing
// id always wins; otherwise one is synthesized from the heading's index and
// text, so two headings with identical text still get distinct anchors.
func anchorID(i int, text, existing string) string {
	if existing != "" {
		return existing
	}
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = nonAnchorChars.ReplaceAllString(slug, "")
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return "heading-" + strconv.Itoa(i) + "-" + slug
}

func headingSelector(maxDepth int) string {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxHeadingDepth
	}
	if maxDepth > 6 {
		maxDepth = 6
	}
	tags := make([]string, 0, maxDepth)
	for l := 1; l <= maxDepth; l++ {
		tags = append(tags, "h"+strconv.Itoa(l))
	}
	return strings.Join(tags, ",")
}

func headingLevel(name string) int {
	if len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6' {
		return int(name[1] - '0')
	}
	return 0
}
