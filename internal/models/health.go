// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package models

// HealthStatus is the payload of the health endpoint. CatalogProducts and
// BehavioralEvents report the row counts loaded at startup; both stay
// constant for the life of the process.
type HealthStatus struct {
	Status           string  `json:"status"`
	Version          string  `json:"version"`
	CatalogProducts  int     `json:"catalog_products"`
	BehavioralEvents int     `json:"behavioral_events"`
	Uptime           float64 `json:"uptime_seconds"`
}
