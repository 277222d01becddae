// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/promodex/promodex/internal/models"
	"github.com/promodex/promodex/internal/store"
)

// maxAlternatives caps the number of substitutes returned.
const maxAlternatives = 3

// FindAlternatives searches the catalog for cheaper same-category substitutes
// for the product identified by excludeID. Candidates must share the category,
// be strictly cheaper than price, and not be the product itself. Results are
// sorted ascending by price with ties kept in original catalog order, and at
// most three are returned. An empty slice (never nil, never an error) means
// no qualifying alternative exists.
func FindAlternatives(catalog *store.CatalogStore, category string, price decimal.Decimal, excludeID string) []models.AlternativeProduct {
	var candidates []models.CatalogEntry
	for _, e := range catalog.All() {
		if e.Category != category || e.ProductID == excludeID {
			continue
		}
		if !e.Price.LessThan(price) {
			continue
		}
		candidates = append(candidates, e)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Price.LessThan(candidates[j].Price)
	})
	if len(candidates) > maxAlternatives {
		candidates = candidates[:maxAlternatives]
	}

	alternatives := make([]models.AlternativeProduct, 0, len(candidates))
	for _, e := range candidates {
		alternatives = append(alternatives, models.AlternativeProduct{
			ProductID: e.ProductID,
			Name:      e.Name,
			Price:     e.Price.Round(2).InexactFloat64(),
		})
	}
	return alternatives
}
