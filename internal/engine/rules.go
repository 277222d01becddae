// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package engine

import (
	"github.com/shopspring/decimal"

	"github.com/promodex/promodex/internal/models"
)

// discountRule maps a behavioral predicate to a discount outcome. Rules are
// evaluated in declaration order and the first match wins; exclusivity comes
// from the ordering, the predicates themselves may overlap.
type discountRule struct {
	// Name identifies the rule in logs and metrics.
	Name string

	// Rate is the candidate discount as a fraction of price. The margin cap
	// always dominates: the granted amount is min(price*Rate, max safe).
	Rate decimal.Decimal

	Explanation string
	Matches     func(c models.AggregateCounts) bool
}

// noDiscountExplanation is returned when no rule matches.
const noDiscountExplanation = "Low behavioral signal — discount not required."

// discountRules is the ordered rule list, strongest signal first.
var discountRules = []discountRule{
	{
		Name:        "cart_abandonment",
		Rate:        decimal.NewFromFloat(0.15),
		Explanation: "High cart abandonment — offering up to 15% within margin.",
		Matches: func(c models.AggregateCounts) bool {
			return c.Carts > c.Purchases && c.Carts >= 5
		},
	},
	{
		Name:        "views_no_conversion",
		Rate:        decimal.NewFromFloat(0.10),
		Explanation: "Many views but no conversions — gentle 10% nudge.",
		Matches: func(c models.AggregateCounts) bool {
			return c.Views >= 5 && c.Purchases == 0
		},
	},
	{
		Name:        "returning_interest",
		Rate:        decimal.NewFromFloat(0.05),
		Explanation: "Returning interest — consider 5% soft promo.",
		Matches: func(c models.AggregateCounts) bool {
			return c.Purchases > 0 && c.Carts > 0
		},
	},
}
