package client

import (
	"sort"
	"strings"
)

// View-state derivation over fetched article lists. These mirror what the
// site's pages compute client-side: the hero/featured split on the front
// page, the trending sidebar, and the related-articles block on detail pages.

// SplitFeatured partitions articles into featured and regular sets,
// preserving the input (newest-first) order.
func SplitFeatured(articles []Article) (featured, regular []Article) {
	for _, a := range articles {
		if a.Featured {
			featured = append(featured, a)
		} else {
			regular = append(regular, a)
		}
	}
	return featured, regular
}

// TrendingByViews returns the n most-viewed articles, most viewed first.
// Ties keep the input (newest-first) order.
func TrendingByViews(articles []Article, n int) []Article {
	sorted := append([]Article(nil), articles...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Views > sorted[j].Views
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Related ranks candidates by affinity to the given article: same category
// scores highest, then shared-tag count; newest-first order breaks ties. The
// article itself is excluded.
func Related(articles []Article, current Article, n int) []Article {
	type scored struct {
		article Article
		score   int
		pos     int
	}

	tags := make(map[string]bool, len(current.Tags))
	for _, t := range current.Tags {
		tags[strings.ToLower(t)] = true
	}

	var candidates []scored
	for i, a := range articles {
		if a.ID == current.ID {
			continue
		}
		score := 0
		if a.Category != "" && strings.EqualFold(a.Category, current.Category) {
			score += 10
		}
		for _, t := range a.Tags {
			if tags[strings.ToLower(t)] {
				score++
			}
		}
		if score == 0 {
			continue
		}
		candidates = append(candidates, scored{article: a, score: score, pos: i})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].pos < candidates[j].pos
	})

	if n < len(candidates) {
		candidates = candidates[:n]
	}
	result := make([]Article, 0, len(candidates))
	for _, s := range candidates {
		result = append(result, s.article)
	}
	return result
}
