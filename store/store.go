// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/ia-local/revendications/models"
)

var (
	ErrNotFound        = errors.New("revendication not found")
	ErrInvalidVoteType = errors.New("invalid vote type")
	ErrInvalidDelta    = errors.New("score change must be a nonzero integer")
)

// Store owns the in-memory corpus of demands and its on-disk JSON documents.
// All mutations are read-modify-write on the corpus followed by a full
// rewrite of the owning category document. Writes from two processes to the
// same category are last-writer-wins; within one process the mutex
// serializes them.
type Store struct {
	mu      sync.RWMutex
	dataDir string
	ranking string

	corpus map[string][]models.Demand
	log    []models.AnalysisLogEntry
}

// Open creates a Store over dataDir and performs the initial load.
// A missing or unreadable directory is not fatal: the corpus starts empty
// and the condition is logged.
func Open(dataDir, ranking string) *Store {
	s := &Store{
		dataDir: dataDir,
		ranking: ranking,
		corpus:  make(map[string][]models.Demand),
	}
	s.Reload()
	return s
}

// Reload re-reads every category document and the analysis log from disk,
// replacing the in-memory corpus. Corrupt or unreadable files are skipped
// with a warning so one bad document never empties the rest of the corpus.
func (s *Store) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log = readAnalysisLog(s.dataDir)

	files, err := listCategoryFiles(s.dataDir)
	if err != nil {
		slog.Warn("data directory unavailable, starting with empty corpus",
			"dir", s.dataDir, "error", err)
		s.corpus = make(map[string][]models.Demand)
		return
	}

	corpus := make(map[string][]models.Demand, len(files))
	for path, category := range files {
		demands, err := readCategoryFile(path, category)
		if err != nil {
			slog.Warn("skipping unreadable category document", "path", path, "error", err)
			continue
		}
		corpus[category] = demands
	}

	s.corpus = corpus
	slog.Info("revendications loaded", "categories", len(corpus), "total", countDemands(corpus))
}

func countDemands(corpus map[string][]models.Demand) int {
	total := 0
	for _, demands := range corpus {
		total += len(demands)
	}
	return total
}

// findByID scans all categories for a demand. Linear scan: the corpus is a
// few hundred records. Caller must hold at least a read lock.
func (s *Store) findByID(id string) (category string, index int, ok bool) {
	for category, demands := range s.corpus {
		for i := range demands {
			if demands[i].ID == id {
				return category, i, true
			}
		}
	}
	return "", 0, false
}

// ApplyVote increments one of the three counters for the identified demand
// by exactly 1, recomputes the derived total, and persists the owning
// category. A persist failure is logged but does not undo the vote: memory
// runs ahead of disk until the next reload, a documented limitation of the
// whole-document storage model.
func (s *Store) ApplyVote(id, voteType string) (models.Votes, int, error) {
	if voteType != models.VoteOui && voteType != models.VoteNon && voteType != models.VoteAbstention {
		return models.Votes{}, 0, ErrInvalidVoteType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category, i, ok := s.findByID(id)
	if !ok {
		return models.Votes{}, 0, ErrNotFound
	}

	d := &s.corpus[category][i]
	switch voteType {
	case models.VoteOui:
		d.Votes.Oui++
	case models.VoteNon:
		d.Votes.Non++
	case models.VoteAbstention:
		d.Votes.Abstention++
	}
	d.TotalVotes = d.Votes.Total()

	if err := writeCategoryFile(s.dataDir, category, s.corpus[category]); err != nil {
		slog.Error("failed to persist category after vote", "category", category, "error", err)
	}

	return d.Votes, d.TotalVotes, nil
}

// ApplyScoreDelta adds a signed delta to the demand's running score and
// persists the owning category. No floor or ceiling is enforced: the point
// budget is a client-side concern.
func (s *Store) ApplyScoreDelta(id string, delta int) (int, error) {
	if delta == 0 {
		return 0, ErrInvalidDelta
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	category, i, ok := s.findByID(id)
	if !ok {
		return 0, ErrNotFound
	}

	d := &s.corpus[category][i]
	d.TotalScore += delta

	if err := writeCategoryFile(s.dataDir, category, s.corpus[category]); err != nil {
		return d.TotalScore, err
	}

	return d.TotalScore, nil
}
