// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

// Package engine implements the discount decision core: behavioral
// aggregation, the ordered discount rule list, and the cheaper-alternative
// fallback search. Every function here is a pure computation over
// already-loaded immutable data; the only failure mode is a missing product.
package engine

import "github.com/promodex/promodex/internal/models"

// Aggregate counts events by kind for one product's event slice. Kinds
// outside view/cart/purchase are skipped, not errors, so new event kinds in
// the source never break aggregation. Pure function, O(n) in event count.
func Aggregate(events []models.BehavioralEvent) models.AggregateCounts {
	var counts models.AggregateCounts
	for _, ev := range events {
		switch ev.Kind {
		case models.EventView:
			counts.Views++
		case models.EventCart:
			counts.Carts++
		case models.EventPurchase:
			counts.Purchases++
		}
	}
	return counts
}
