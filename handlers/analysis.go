// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ia-local/revendications/ai"
	"github.com/ia-local/revendications/middleware"
	"github.com/ia-local/revendications/models"
	"github.com/ia-local/revendications/store"
)

type AnalysisHandler struct {
	store *store.Store
	orch  *ai.Orchestrator
}

func NewAnalysisHandler(s *store.Store, orch *ai.Orchestrator) *AnalysisHandler {
	return &AnalysisHandler{store: s, orch: orch}
}

// GetDetail handles GET /api/detail?text=
// Stage one of the analysis chain: develops the demand's literal wording
// into a contextualized thesis.
func (h *AnalysisHandler) GetDetail(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	if text == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Le paramètre 'text' (revendication) est manquant.")
		return
	}

	detail, err := h.orch.Detail(r.Context(), text)
	if err != nil {
		slog.Error("detail generation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError,
			fmt.Sprintf("Erreur lors de la génération des détails par le modèle. Vérifiez la clé API et les logs. Détails: %s", err.Error()))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DetailResponse{Detail: detail})
}

// GetOptimise handles GET /api/optimise?detail=
// Stage two: consumes stage one's output and produces a concrete solution.
// Caller-chained, so re-running it for the same detail is harmless.
func (h *AnalysisHandler) GetOptimise(w http.ResponseWriter, r *http.Request) {
	detail := r.URL.Query().Get("detail")
	if detail == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Le paramètre 'detail' (détail de la revendication) est manquant.")
		return
	}

	solution, err := h.orch.Optimise(r.Context(), detail)
	if err != nil {
		slog.Error("optimise generation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError,
			fmt.Sprintf("Erreur lors de la génération des solutions par le modèle. Vérifiez la clé API et les logs. Détails: %s", err.Error()))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OptimiseResponse{Solution: solution})
}

// GetFullAnalysis handles GET /api/full-analysis?topic=
// Joined text+image generation. The orchestrator always produces a
// response object, so this never returns a 500.
func (h *AnalysisHandler) GetFullAnalysis(w http.ResponseWriter, r *http.Request) {
	topic := r.URL.Query().Get("topic")
	if topic == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Le paramètre 'topic' (revendication) est manquant.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.orch.FullAnalysis(r.Context(), topic))
}

// LogAnalysis handles POST /api/log-analysis
// Records a completed detail+solution bundle so it can be replayed later
// without re-invoking any provider.
func (h *AnalysisHandler) LogAnalysis(w http.ResponseWriter, r *http.Request) {
	var req models.LogAnalysisRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Les données d'analyse (itemId, detail, solution) sont requises.")
		return
	}

	if req.ItemID == "" || req.Revendication == "" || req.DetailHTML == "" || req.SolutionHTML == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Les données d'analyse (itemId, detail, solution) sont requises.")
		return
	}

	mediaURL := req.MediaURL
	if mediaURL == "" {
		mediaURL = "N/A"
	}

	entry := models.AnalysisLogEntry{
		ItemID:               req.ItemID,
		Revendication:        req.Revendication,
		DetailHTML:           req.DetailHTML,
		SolutionHTML:         req.SolutionHTML,
		MediaURL:             mediaURL,
		FullModalContentHTML: req.FullModalContentHTML,
	}

	if err := h.store.AppendAnalysis(entry); err != nil {
		slog.Error("failed to append analysis log", "item_id", req.ItemID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Échec de l'enregistrement de l'analyse.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.LogAnalysisResponse{
		Success: true,
		Message: "Analyse enregistrée dans le log.",
	})
}

// GetAnalysisLog handles GET /api/get-analysis-log/{itemId}
// Always a 200: a miss is {found:false}, never an error.
func (h *AnalysisHandler) GetAnalysisLog(w http.ResponseWriter, r *http.Request) {
	itemID := r.PathValue("itemId")

	entry, found := h.store.LookupAnalysis(itemID)
	if !found {
		middleware.JSONResponse(w, http.StatusOK, models.AnalysisLogLookupResponse{Found: false})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AnalysisLogLookupResponse{
		Found:                true,
		Revendication:        entry.Revendication,
		DetailHTML:           entry.DetailHTML,
		SolutionHTML:         entry.SolutionHTML,
		MediaURL:             entry.MediaURL,
		FullModalContentHTML: entry.FullModalContentHTML,
	})
}
