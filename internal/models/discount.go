// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package models

import "github.com/shopspring/decimal"

// AggregateCounts holds per-product behavioral signal: how many view, cart
// and purchase events the log contains for one product. Computed per request,
// never persisted.
type AggregateCounts struct {
	Views     int `json:"views"`
	Carts     int `json:"carts"`
	Purchases int `json:"purchases"`
}

// DiscountDecision is the evaluator's verdict for one product.
//
// Amount and Percent stay unrounded here; rounding happens exactly once, when
// the decision is serialized into a DiscountResponse. MaxSafe is the hard
// ceiling (70% of margin, rounded to 2 places, clipped at zero) that already
// capped Amount. Rule names the matched rule, or is empty when no rule fired.
type DiscountDecision struct {
	Amount      decimal.Decimal
	Percent     decimal.Decimal
	MaxSafe     decimal.Decimal
	Explanation string
	Rule        string

	// Clamped reports that the matched rule's raw amount exceeded MaxSafe
	// and was reduced to it.
	Clamped bool
}

// AlternativeProduct is a cheaper same-category substitute offered when no
// discount is granted.
type AlternativeProduct struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"product_name"`
	Price     float64 `json:"price"`
}

// DiscountResponse is the full result shape for a discount request. It echoes
// the product economics and the behavioral counts alongside the suggestion so
// a storefront can explain the recommendation.
//
// All monetary fields are rounded to two decimal places at this boundary and
// nowhere earlier, so rounding error never compounds across the pipeline.
// CheaperAlternatives is populated only when SuggestedDiscountAmount is zero,
// and is always present in the JSON (empty array, not null).
type DiscountResponse struct {
	ProductID string `json:"product_id"`

	Views     int `json:"views"`
	Carts     int `json:"carts"`
	Purchases int `json:"purchases"`

	Price           float64 `json:"price"`
	Cost            float64 `json:"cost"`
	Margin          float64 `json:"margin"`
	MaxSafeDiscount float64 `json:"max_safe_discount"`

	SuggestedDiscountPercent float64 `json:"suggested_discount_percent"`
	SuggestedDiscountAmount  float64 `json:"suggested_discount_amount"`
	Explanation              string  `json:"explanation"`

	CheaperAlternatives []AlternativeProduct `json:"cheaper_alternatives"`

	// Rule names the matched discount rule for logs and metrics. Empty when
	// no rule fired. Excluded from the wire format.
	Rule string `json:"-"`
}
