// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

// Package models defines the domain types shared across Promodex: the catalog
// and behavioral event records loaded at startup, the request-scoped discount
// types derived from them, and the API response envelope.
package models

import "github.com/shopspring/decimal"

// CatalogEntry is one product row from the catalog source.
//
// Entries are loaded once at startup and never mutated afterwards; they are
// owned exclusively by the catalog store. All monetary values use
// shopspring/decimal, never float64. Price and Cost are non-negative by the
// time an entry exists (the loader rejects negative values), but the margin
// (Price - Cost) may be negative for loss-leader products.
type CatalogEntry struct {
	// ProductID is the unique product identity, normalized to string form
	// at load time so lookups are never type-mismatched.
	ProductID string

	Name     string
	Price    decimal.Decimal
	Cost     decimal.Decimal
	Category string
}

// Margin returns Price - Cost. May be negative; callers treat negative
// margin as zero discount capacity.
func (e CatalogEntry) Margin() decimal.Decimal {
	return e.Price.Sub(e.Cost)
}

// CatalogProduct is the JSON shape of a catalog entry in API responses.
// Money fields are rounded to two places before conversion.
type CatalogProduct struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"product_name"`
	Price     float64 `json:"price"`
	Cost      float64 `json:"cost"`
	Category  string  `json:"category"`
}
