// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the revendications API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - DataHandler: corpus reads (sorted data, statistics)
  - VoteHandler: simple votes and score deltas
  - AnalysisHandler: AI generation endpoints and the analysis log

	dataHandler := handlers.NewDataHandler(s)
	voteHandler := handlers.NewVoteHandler(s)
	analysisHandler := handlers.NewAnalysisHandler(s, orch)

# Read Endpoints

	GET /api/data  → GetData (reloads from disk, category → sorted demands)
	GET /api/stats → GetStats (corpus totals, by category and priority)

# Mutation Endpoints

	POST /api/vote       → Vote (id + voteType ∈ {oui, non, abstention})
	POST /api/vote-score → VoteScore (id + nonzero signed scoreChange)

Both persist the owning category document on success. Unknown ids are 404,
malformed input is 400.

# Analysis Endpoints

	GET  /api/detail?text=         → stage-one analysis
	GET  /api/optimise?detail=     → stage-two solution (caller-chained)
	GET  /api/full-analysis?topic= → parallel text+image, joined
	POST /api/log-analysis         → record a finished bundle
	GET  /api/get-analysis-log/{itemId} → replay without providers

Provider failures surface as 500s with the provider error embedded, except
full-analysis, which degrades in-payload and stays 200.

User-facing error messages are French (they are rendered verbatim by the
front-end); log lines are not.
*/
package handlers
