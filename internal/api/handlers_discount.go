// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/promodex/promodex/internal/engine"
	"github.com/promodex/promodex/internal/logging"
)

// DiscountRequest is the POST /api/v1/discount body.
type DiscountRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64"`
}

// Discount handles POST /api/v1/discount. The body carries the product id;
// the response is the full recommendation: behavioral counts, economics,
// bounded suggestion, and the alternatives fallback.
func (h *Handler) Discount(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	var req DiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request body must be JSON with a product_id field", err)
		return
	}

	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	h.respondDiscount(w, req.ProductID)
}

// DiscountByID handles GET /api/v1/discount/{product_id}, the path-param form
// of the same lookup.
func (h *Handler) DiscountByID(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")
	if apiErr := validateRequest(&DiscountRequest{ProductID: productID}); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	h.respondDiscount(w, productID)
}

// respondDiscount runs the evaluation and writes the result. Shared by the
// body and path-param forms so both return byte-identical shapes.
func (h *Handler) respondDiscount(w http.ResponseWriter, productID string) {
	start := time.Now()

	result, err := h.engine.GetDiscount(productID)
	if err != nil {
		if errors.Is(err, engine.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "NOT_FOUND", "Product not found in event data or catalog", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to evaluate discount", err)
		return
	}

	logging.Debug().
		Str("product_id", sanitizeLogValue(productID)).
		Str("rule", result.Rule).
		Float64("amount", result.SuggestedDiscountAmount).
		Int("alternatives", len(result.CheaperAlternatives)).
		Msg("Discount evaluated")

	respondJSON(w, http.StatusOK, successResponse(result, start))
}
