// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package api

import (
	"net/http"
	"time"

	"github.com/promodex/promodex/internal/logging"
	"github.com/promodex/promodex/internal/models"
)

// maxScanUploadBytes bounds the multipart form held in memory per scan.
const maxScanUploadBytes = 10 << 20

// scanMatches is the fixed result set returned while image recognition is
// not implemented. The storefront consumes the shape today; the matcher can
// be swapped in behind the same endpoint later.
var scanMatches = []models.ScanMatch{
	{
		Name:  "Women Round Neck Cotton Top",
		Price: 100,
		Link:  "http://localhost:5173/product/aaaaa",
		Image: "https://via.placeholder.com/100",
	},
	{
		Name:  "Men Round Neck Pure Cotton T-shirt",
		Price: 200,
		Link:  "http://localhost:5173/product/aaaab",
		Image: "https://via.placeholder.com/100",
	},
}

// Scan handles POST /api/v1/scan. It accepts a multipart form with an
// "image" file and returns product matches. Recognition is mocked; the
// upload is read and discarded.
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed", nil)
		return
	}

	start := time.Now()

	if err := r.ParseMultipartForm(maxScanUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Request must be multipart form data with an image file", err)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Missing image file in form field 'image'", err)
		return
	}
	defer file.Close()

	logging.Debug().
		Str("filename", sanitizeLogValue(header.Filename)).
		Int64("size", header.Size).
		Msg("Scan upload received")

	respondJSON(w, http.StatusOK, successResponse(models.ScanResult{Matches: scanMatches}, start))
}
