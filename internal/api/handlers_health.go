// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package api

import (
	"net/http"
	"time"

	"github.com/promodex/promodex/internal/models"
)

// version is the reported service version.
const version = "1.0.0"

// Health handles GET /api/v1/health, reporting overall status and the row
// counts of the in-memory stores. The stores are loaded before the server
// starts, so a running process with an empty catalog is degraded, not dead.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	status := "healthy"
	if h.catalog.Len() == 0 {
		status = "degraded"
	}

	health := models.HealthStatus{
		Status:           status,
		Version:          version,
		CatalogProducts:  h.catalog.Len(),
		BehavioralEvents: h.events.Len(),
		Uptime:           time.Since(h.startTime).Seconds(),
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles liveness probe requests. Returns 200 whenever the
// process is alive, regardless of data state.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests. Returns 200 only when the
// catalog loaded at least one product, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	if h.catalog.Len() == 0 {
		respondError(w, http.StatusServiceUnavailable, "NOT_READY", "Catalog store is empty", nil)
		return
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data: map[string]interface{}{
			"ready":             true,
			"catalog_products":  h.catalog.Len(),
			"behavioral_events": h.events.Len(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
