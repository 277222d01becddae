// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package engine

import (
	"github.com/shopspring/decimal"

	"github.com/promodex/promodex/internal/models"
)

// maxSafeMarginShare is the fraction of margin a discount may consume.
var maxSafeMarginShare = decimal.NewFromFloat(0.7)

var oneHundred = decimal.NewFromInt(100)

// Evaluate runs the ordered rule list against one product's economics and
// behavioral counts and returns a bounded discount decision.
//
// The max safe discount is round(margin*0.7, 2) clipped at zero; it caps the
// candidate amount of whichever rule fires, so the seller never gives away
// more than 70% of margin regardless of behavioral signal. Amount and Percent
// in the returned decision are left unrounded; callers round once at the
// output boundary. A zero price forces Percent to zero rather than dividing
// by zero.
func Evaluate(entry models.CatalogEntry, counts models.AggregateCounts) models.DiscountDecision {
	maxSafe := entry.Margin().Mul(maxSafeMarginShare).Round(2)
	if maxSafe.IsNegative() {
		maxSafe = decimal.Zero
	}

	decision := models.DiscountDecision{
		MaxSafe:     maxSafe,
		Explanation: noDiscountExplanation,
	}

	for _, rule := range discountRules {
		if !rule.Matches(counts) {
			continue
		}
		raw := entry.Price.Mul(rule.Rate)
		decision.Amount = decimal.Min(raw, maxSafe)
		decision.Explanation = rule.Explanation
		decision.Rule = rule.Name
		decision.Clamped = raw.GreaterThan(maxSafe)
		break
	}

	if entry.Price.IsPositive() {
		decision.Percent = decision.Amount.Div(entry.Price).Mul(oneHundred)
	}

	return decision
}
