// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/ia-local/revendications/ai"
	"github.com/ia-local/revendications/cliparse"
	"github.com/ia-local/revendications/handlers"
	"github.com/ia-local/revendications/middleware"
	"github.com/ia-local/revendications/store"
)

func NewRouter(s *store.Store, orch *ai.Orchestrator, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	dataHandler := handlers.NewDataHandler(s)
	voteHandler := handlers.NewVoteHandler(s)
	analysisHandler := handlers.NewAnalysisHandler(s, orch)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Corpus reads
	mux.HandleFunc("GET /api/data", middleware.WithLogging(dataHandler.GetData))
	mux.HandleFunc("GET /api/stats", middleware.WithLogging(dataHandler.GetStats))

	// Votes and priority scores
	mux.HandleFunc("POST /api/vote", middleware.WithLogging(voteHandler.Vote))
	mux.HandleFunc("POST /api/vote-score", middleware.WithLogging(voteHandler.VoteScore))

	// AI analysis and its replay log
	mux.HandleFunc("GET /api/detail", middleware.WithLogging(analysisHandler.GetDetail))
	mux.HandleFunc("GET /api/optimise", middleware.WithLogging(analysisHandler.GetOptimise))
	mux.HandleFunc("GET /api/full-analysis", middleware.WithLogging(analysisHandler.GetFullAnalysis))
	mux.HandleFunc("POST /api/log-analysis", middleware.WithLogging(analysisHandler.LogAnalysis))
	mux.HandleFunc("GET /api/get-analysis-log/{itemId}", middleware.WithLogging(analysisHandler.GetAnalysisLog))

	// Static front-end, when configured; otherwise a plain root banner
	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	} else {
		mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("revendications API v1"))
		})
	}

	return mux
}
