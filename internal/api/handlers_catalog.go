// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package api

import (
	"net/http"
	"time"
)

// Catalog handles GET /api/v1/catalog, returning every product in source
// order with money rounded to two places.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	start := time.Now()
	products := h.engine.GetCatalog()

	respondJSON(w, http.StatusOK, successResponse(products, start))
}
