// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/ia-local/revendications/middleware"
	"github.com/ia-local/revendications/store"
)

type DataHandler struct {
	store *store.Store
}

func NewDataHandler(s *store.Store) *DataHandler {
	return &DataHandler{store: s}
}

// GetData handles GET /api/data
// Reloads the corpus from disk so concurrent writer processes stay
// visible, then returns every category's sorted view. An empty corpus is
// a 200 with an empty object, never an error.
func (h *DataHandler) GetData(w http.ResponseWriter, r *http.Request) {
	h.store.Reload()
	middleware.JSONResponse(w, http.StatusOK, h.store.SortedAll())
}

// GetStats handles GET /api/stats
func (h *DataHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	h.store.Reload()
	middleware.JSONResponse(w, http.StatusOK, h.store.Stats())
}
