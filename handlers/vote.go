// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ia-local/revendications/middleware"
	"github.com/ia-local/revendications/models"
	"github.com/ia-local/revendications/store"
)

type VoteHandler struct {
	store *store.Store
}

func NewVoteHandler(s *store.Store) *VoteHandler {
	return &VoteHandler{store: s}
}

// Vote handles POST /api/vote
// Increments one of the oui/non/abstention counters by exactly 1 and
// persists the owning category.
func (h *VoteHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Les paramètres 'id' et 'voteType' sont requis.")
		return
	}

	if req.ID == "" || req.VoteType == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Les paramètres 'id' et 'voteType' sont requis.")
		return
	}

	votes, total, err := h.store.ApplyVote(req.ID, req.VoteType)
	if errors.Is(err, store.ErrInvalidVoteType) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Type de vote invalide.")
		return
	}
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("Revendication avec l'ID '%s' non trouvée.", req.ID))
		return
	}

	slog.Info("vote recorded", "id", req.ID, "vote_type", req.VoteType, "total_votes", total)

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		Success:    true,
		NewVotes:   votes,
		TotalVotes: total,
	})
}

// VoteScore handles POST /api/vote-score
// Applies a signed point delta to the demand's running score. No bound is
// enforced server-side: the per-user point budget lives in the client.
func (h *VoteHandler) VoteScore(w http.ResponseWriter, r *http.Request) {
	var req models.VoteScoreRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Les paramètres 'id' et 'scoreChange' (différence de points) sont requis.")
		return
	}

	if req.ID == "" || req.ScoreChange == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Les paramètres 'id' et 'scoreChange' (différence de points) sont requis.")
		return
	}

	newScore, err := h.store.ApplyScoreDelta(req.ID, req.ScoreChange)
	if errors.Is(err, store.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, fmt.Sprintf("Revendication avec l'ID '%s' non trouvée.", req.ID))
		return
	}
	if err != nil {
		slog.Error("failed to persist score change", "id", req.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Erreur serveur lors de la sauvegarde du score.")
		return
	}

	slog.Info("score updated", "id", req.ID, "delta", req.ScoreChange, "new_score", newScore)

	middleware.JSONResponse(w, http.StatusOK, models.VoteScoreResponse{
		Success:      true,
		NewItemScore: newScore,
	})
}
