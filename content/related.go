package content

import (
	"sort"
	"strings"
)

// DefaultRelatedLimit is the related-list length used when the caller passes
// a non-positive limit.
const DefaultRelatedLimit = 4

const (
	tagWeight      = 0.7
	categoryWeight = 0.3
)

// FindRelated ranks the pool against current by tag/category overlap and
// returns at most limit results. Candidates scoring above zero come first,
// ordered by score descending with pool order preserved on ties; if fewer
// than limit score, the remainder is backfilled with the most recent
// unselected candidates at Similarity 0. The current item's own slug is
// always excluded.
func FindRelated(current Item, pool []Item, limit int) []Related {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	type scored struct {
		item  Item
		score float64
	}
	candidates := make([]scored, 0, len(pool))
	for _, it := range pool {
		if it.Slug == current.Slug {
			continue
		}
		candidates = append(candidates, scored{item: it, score: Similarity(current, it)})
	}

	var picked []scored
	for _, c := range candidates {
		if c.score > 0 {
			picked = append(picked, c)
		}
	}
	sort.SliceStable(picked, func(i, j int) bool { return picked[i].score > picked[j].score })
	if len(picked) > limit {
		picked = picked[:limit]
	}

	if len(picked) < limit {
		taken := make(map[string]struct{}, len(picked))
		for _, p := range picked {
			taken[p.item.Slug] = struct{}{}
		}
		var rest []scored
		for _, c := range candidates {
			if _, ok := taken[c.item.Slug]; !ok {
				rest = append(rest, c)
			}
		}
		sort.SliceStable(rest, func(i, j int) bool { return rest[i].item.Date.After(rest[j].item.Date) })
		for _, c := range rest {
			if len(picked) == limit {
				break
			}
			picked = append(picked, scored{item: c.item})
		}
	}

	results := make([]Related, 0, len(picked))
	for _, p := range picked {
		results = append(results, Related{
			Slug:        p.item.Slug,
			Title:       p.item.Title,
			Excerpt:     p.item.Excerpt,
			Tags:        p.item.Tags,
			Date:        p.item.Date,
			ReadingTime: EstimateReadingTime(p.item.Body, DefaultWordsPerMinute),
			Similarity:  p.score,
		})
	}
	return results
}

// Similarity scores the overlap between two items in [0, 1]: the Jaccard
// index of their lowercased tag sets weighted by 0.7, plus 0.3 when both
// carry the same category (case-insensitive).
func Similarity(a, b Item) float64 {
	score := tagWeight * tagSimilarity(a.Tags, b.Tags)
	if a.Category != "" && b.Category != "" && strings.EqualFold(a.Category, b.Category) {
		score += categoryWeight
	}
	return score
}

// tagSimilarity is the Jaccard index |A∩B| / |A∪B| over the two lowercased
// tag sets, or 0 when either set is empty.
func tagSimilarity(a, b []string) float64 {
	as, bs := tagSet(a), tagSet(b)
	if len(as) == 0 || len(bs) == 0 {
		return 0
	}
	intersection := 0
	union := len(bs)
	for t := range as {
		if _, ok := bs[t]; ok {
			intersection++
		} else {
			union++
		}
	}
	return float64(intersection) / float64(union)
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}
