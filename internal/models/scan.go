// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package models

// ScanResult is the payload of the image scan endpoint.
type ScanResult struct {
	Matches []ScanMatch `json:"matches"`
}

// ScanMatch is one product matched against an uploaded image. Link points at
// the storefront product page; Image is a preview URL.
type ScanMatch struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Link  string  `json:"link"`
	Image string  `json:"image"`
}
