// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store owns the revendications corpus: loading per-category JSON
documents, vote and score mutation, sorted views, summary statistics, and
the append-only analysis log.

# Storage Model

One JSON array document per category under the data directory, plus
analysis_log.json. Historical file-name typos map to canonical category
keys through a fixed rename table (demcratie → democratie,
internationnal → international); saves map back to the historical name so
on-disk layout stays stable.

Every mutation rewrites the owning category's whole document. At this
corpus scale that avoids partial-write corruption; the trade-off is
last-writer-wins between concurrent writer processes. Within one process
the store mutex serializes mutations.

# Loading

	s := store.Open(cfg.DataDir, cfg.Ranking)
	s.Reload() // re-read from disk, e.g. on each GET /api/data

Loading fails soft: a missing directory yields an empty corpus, a corrupt
document is skipped with a warning. Records get defaults for missing
fields (zero votes, ric_type "Législatif", priority "Faible", score 0) and
ids of the form <category>-<index> when none was assigned.

# Mutation

	votes, total, err := s.ApplyVote("democratie-3", "oui")
	score, err := s.ApplyScoreDelta("democratie-3", +5)

Both return ErrNotFound for unknown ids; ApplyVote returns
ErrInvalidVoteType outside {oui, non, abstention}; ApplyScoreDelta returns
ErrInvalidDelta for a zero delta.

# Views

SortedView and SortedAll return fresh orderings (storage order is never
mutated): ranking signal descending, then priority rank, then demand text
for determinism. The ranking signal is totalScore under the "score" policy
and totalVotes under the "votes" policy — both existed over the system's
lifetime, so the choice is explicit configuration.

# Analysis Log

AppendAnalysis prepends a timestamped entry and rewrites the log document;
LookupAnalysis returns the most recent entry for a demand id.
*/
package store
