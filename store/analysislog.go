// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/ia-local/revendications/models"
)

// readAnalysisLog loads the analysis log document. Any read or parse
// failure yields an empty log, never an error: the log is a convenience
// cache, not authoritative state.
func readAnalysisLog(dataDir string) []models.AnalysisLogEntry {
	path := filepath.Join(dataDir, analysisLogFile)
	content, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("analysis log not found, starting a new one", "path", path)
		return nil
	}

	var entries []models.AnalysisLogEntry
	if err := json.Unmarshal(content, &entries); err != nil {
		slog.Warn("analysis log unreadable, starting a new one", "path", path, "error", err)
		return nil
	}

	slog.Info("analysis log loaded", "entries", len(entries))
	return entries
}

// AppendAnalysis prepends a timestamped entry to the log and rewrites the
// whole document. Entries are never updated in place: a re-analysis of the
// same demand produces a newer entry that shadows the old one on lookup.
func (s *Store) AppendAnalysis(entry models.AnalysisLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry.ID = uuid.NewString()
	entry.Timestamp = time.Now().UTC()
	s.log = append([]models.AnalysisLogEntry{entry}, s.log...)

	content, err := json.MarshalIndent(s.log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize analysis log: %w", err)
	}

	path := filepath.Join(s.dataDir, analysisLogFile)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write analysis log: %w", err)
	}

	slog.Info("analysis logged", "item_id", entry.ItemID, "entry_id", entry.ID)
	return nil
}

// LookupAnalysis returns the most recent logged analysis for a demand id.
// The log is most-recent-first, so the first match wins.
func (s *Store) LookupAnalysis(itemID string) (models.AnalysisLogEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, entry := range s.log {
		if entry.ItemID == itemID {
			return entry, true
		}
	}
	return models.AnalysisLogEntry{}, false
}

// AnalysisLogLen reports the number of logged entries.
func (s *Store) AnalysisLogLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.log)
}
