// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the revendications API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(s, orch, cfg)

# Endpoints

Health:

	GET /health

Corpus (public):

	GET /api/data  - Category → sorted demand arrays (reloads from disk)
	GET /api/stats - Totals by category and priority

Mutation (public, identityless by design):

	POST /api/vote       - One oui/non/abstention increment
	POST /api/vote-score - Signed priority-point delta

AI analysis:

	GET  /api/detail?text=         - Stage-one analysis
	GET  /api/optimise?detail=     - Stage-two solution
	GET  /api/full-analysis?topic= - Parallel text+image
	POST /api/log-analysis         - Record generated bundle
	GET  /api/get-analysis-log/{itemId} - Replay logged bundle

Root serves the static front-end directory when one is configured.

# Handler Initialization

The router creates handler instances with dependency injection:

	dataHandler := handlers.NewDataHandler(s)
	voteHandler := handlers.NewVoteHandler(s)
	analysisHandler := handlers.NewAnalysisHandler(s, orch)
*/
package router
