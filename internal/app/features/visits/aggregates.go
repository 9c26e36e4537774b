// internal/app/features/visits/aggregates.go
package visits

import "github.com/dspcoder123/admin-panel/internal/domain/models"

// Stats are the headline numbers above the visits table. They are computed
// from the full visit list, before any search filter, so the totals stay
// stable while the operator narrows the table.
type Stats struct {
	TotalVisits     int
	UniqueUsers     int
	MostVisitedPage string
	MostVisitedHits int
}

// ComputeStats aggregates the visit list in one pass per metric.
// Unique users counts distinct non-empty user ids; anonymous visits do not
// contribute. The most-visited page keeps first-encountered order on ties.
func ComputeStats(all []models.Visit) Stats {
	stats := Stats{TotalVisits: len(all)}

	seen := make(map[string]struct{})
	for _, v := range all {
		if v.UserID != "" {
			seen[v.UserID] = struct{}{}
		}
	}
	stats.UniqueUsers = len(seen)

	counts := make(map[string]int)
	order := make([]string, 0)
	for _, v := range all {
		key := v.PageKey()
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}
	for _, key := range order {
		if counts[key] > stats.MostVisitedHits {
			stats.MostVisitedPage = key
			stats.MostVisitedHits = counts[key]
		}
	}

	return stats
}
