// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package models

import "time"

// APIResponse is the standardized wrapper used by every HTTP endpoint.
//
// Status is "success" or "error". Data carries the payload on success; Error
// is populated only when Status is "error".
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "NOT_FOUND",
//	    "message": "Product not found in event data or catalog",
//	    "details": {"product_id": "p999"}
//	  },
//	  "metadata": {"timestamp": "2026-08-29T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability. QueryTimeMS is the
// in-memory evaluation time; it is kept for parity with dashboards that track
// per-endpoint latency even though evaluations are sub-millisecond.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError carries a machine-readable code alongside the human-readable
// message. Codes used by Promodex:
//   - VALIDATION_ERROR: missing or malformed request input
//   - NOT_FOUND: product absent from catalog or event log
//   - METHOD_NOT_ALLOWED: wrong HTTP method
//   - NOT_READY: readiness probe failed, catalog store is empty
//   - RATE_LIMITED: request rejected by the per-IP rate limiter
//   - INTERNAL_ERROR: unexpected failure (should not occur on valid input)
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
