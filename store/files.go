// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ia-local/revendications/models"
)

// categoryRenames maps historical (misspelled) file names to canonical
// category keys. The on-disk names are stable; renaming a category means
// adding an entry here, never rewriting existing files.
var categoryRenames = map[string]string{
	"demcratie":      "democratie",
	"internationnal": "international",
}

// analysisLogFile is excluded from category enumeration.
const analysisLogFile = "analysis_log.json"

// canonicalCategory applies the rename table to a file base name.
func canonicalCategory(fileName string) string {
	if renamed, ok := categoryRenames[fileName]; ok {
		return renamed
	}
	return fileName
}

// categoryFileName reverses the rename table so a canonical category is
// written back to its historical file.
func categoryFileName(category string) string {
	for file, canonical := range categoryRenames {
		if canonical == category {
			return file
		}
	}
	return category
}

// persistedDemand is the allow-list of fields written to disk. The derived
// totalVotes field is deliberately absent; totalScore is retained.
type persistedDemand struct {
	ID         string       `json:"id"`
	Category   string       `json:"category"`
	Text       string       `json:"revendication"`
	Votes      models.Votes `json:"votes"`
	TotalScore int          `json:"totalScore"`
	RicType    string       `json:"ric_type"`
	Priority   string       `json:"priority"`
}

// rawDemand tolerates partial records in hand-edited data files: every
// field except the text may be missing and gets a default on load.
type rawDemand struct {
	ID         string        `json:"id"`
	Text       string        `json:"revendication"`
	Votes      *models.Votes `json:"votes"`
	TotalScore int           `json:"totalScore"`
	RicType    string        `json:"ric_type"`
	Priority   string        `json:"priority"`
}

// readCategoryFile loads one category document and normalizes each record:
// missing ids become "<category>-<index>", absent counters/labels get their
// defaults, and totalVotes is recomputed from the counters.
func readCategoryFile(path, category string) ([]models.Demand, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var raw []rawDemand
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	demands := make([]models.Demand, 0, len(raw))
	for i, r := range raw {
		d := models.Demand{
			ID:         r.ID,
			Category:   category,
			Text:       r.Text,
			TotalScore: r.TotalScore,
			RicType:    r.RicType,
			Priority:   r.Priority,
		}
		if d.ID == "" {
			d.ID = fmt.Sprintf("%s-%d", category, i)
		}
		if r.Votes != nil {
			d.Votes = *r.Votes
		}
		if d.RicType == "" {
			d.RicType = models.DefaultRicType
		}
		if d.Priority == "" {
			d.Priority = models.PriorityFaible
		}
		d.TotalVotes = d.Votes.Total()
		demands = append(demands, d)
	}

	return demands, nil
}

// writeCategoryFile rewrites a whole category document. Pretty-printed with
// two-space indent to stay byte-compatible with hand-maintained files.
func writeCategoryFile(dataDir, category string, demands []models.Demand) error {
	persisted := make([]persistedDemand, 0, len(demands))
	for _, d := range demands {
		persisted = append(persisted, persistedDemand{
			ID:         d.ID,
			Category:   d.Category,
			Text:       d.Text,
			Votes:      d.Votes,
			TotalScore: d.TotalScore,
			RicType:    d.RicType,
			Priority:   d.Priority,
		})
	}

	content, err := json.MarshalIndent(persisted, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize category %s: %w", category, err)
	}

	path := filepath.Join(dataDir, categoryFileName(category)+".json")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// listCategoryFiles enumerates the category documents in dataDir, returning
// file path and canonical category key pairs.
func listCategoryFiles(dataDir string) (map[string]string, error) {
	entries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", dataDir, err)
	}

	files := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") || name == analysisLogFile {
			continue
		}
		base := strings.TrimSuffix(name, ".json")
		files[filepath.Join(dataDir, name)] = canonicalCategory(base)
	}

	return files, nil
}
