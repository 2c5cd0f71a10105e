// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"sort"

	"github.com/ia-local/revendications/models"
)

// rankingSignal is the primary sort key under the active policy.
func (s *Store) rankingSignal(d models.Demand) int {
	if s.ranking == models.RankingVotes {
		return d.TotalVotes
	}
	return d.TotalScore
}

// SortedView returns a freshly ordered copy of one category. Storage order
// is never mutated. Comparator, in priority order: ranking signal
// descending, priority rank descending, demand text ascending.
func (s *Store) SortedView(category string) []models.Demand {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sortedViewLocked(category)
}

func (s *Store) sortedViewLocked(category string) []models.Demand {
	demands := s.corpus[category]
	view := make([]models.Demand, len(demands))
	copy(view, demands)

	sort.SliceStable(view, func(i, j int) bool {
		if a, b := s.rankingSignal(view[i]), s.rankingSignal(view[j]); a != b {
			return a > b
		}
		if a, b := models.PriorityRank(view[i].Priority), models.PriorityRank(view[j].Priority); a != b {
			return a > b
		}
		return view[i].Text < view[j].Text
	})

	return view
}

// SortedAll returns every category's sorted view, keyed by category.
func (s *Store) SortedAll() map[string][]models.Demand {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make(map[string][]models.Demand, len(s.corpus))
	for category := range s.corpus {
		all[category] = s.sortedViewLocked(category)
	}
	return all
}

// Stats computes the corpus summary in a single full scan. Every priority
// label is always present in ByPriority, zero-filled when never observed.
// TotalVotes aggregates the active ranking signal, matching what the
// dashboard ranks by.
func (s *Store) Stats() models.StatsResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := models.StatsResponse{
		ByCategory: make(map[string]int, len(s.corpus)),
		ByPriority: map[string]int{
			models.PriorityFaible: 0,
			models.PriorityMoyen:  0,
			models.PriorityEleve:  0,
		},
	}

	for category, demands := range s.corpus {
		stats.TotalRevendications += len(demands)
		stats.ByCategory[category] = len(demands)
		for _, d := range demands {
			stats.ByPriority[d.Priority]++
			stats.TotalVotes += s.rankingSignal(d)
		}
	}

	return stats
}
