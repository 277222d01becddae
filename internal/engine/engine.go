// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package engine

import (
	"errors"
	"fmt"

	"github.com/promodex/promodex/internal/metrics"
	"github.com/promodex/promodex/internal/models"
	"github.com/promodex/promodex/internal/store"
)

// ErrProductNotFound is returned by GetDiscount when the product is absent
// from the catalog or has no recorded events. Wrapped errors carry the
// offending product id.
var ErrProductNotFound = errors.New("product not found in event data or catalog")

// Engine drives one discount evaluation end to end: aggregate the product's
// events, evaluate the rule list, and fall back to cheaper alternatives when
// no discount is granted.
//
// The engine holds references to the two immutable stores and is itself
// stateless; a single instance serves unlimited concurrent requests.
type Engine struct {
	catalog *store.CatalogStore
	events  *store.EventStore
}

// New creates an engine over the given stores.
func New(catalog *store.CatalogStore, events *store.EventStore) *Engine {
	return &Engine{catalog: catalog, events: events}
}

// GetCatalog returns the full catalog in source order, money rounded to two
// places for output.
func (e *Engine) GetCatalog() []models.CatalogProduct {
	entries := e.catalog.All()
	products := make([]models.CatalogProduct, 0, len(entries))
	for _, entry := range entries {
		products = append(products, models.CatalogProduct{
			ProductID: entry.ProductID,
			Name:      entry.Name,
			Price:     entry.Price.Round(2).InexactFloat64(),
			Cost:      entry.Cost.Round(2).InexactFloat64(),
			Category:  entry.Category,
		})
	}
	return products
}

// GetDiscount evaluates the discount recommendation for one product.
//
// Returns ErrProductNotFound (wrapped with the product id) when the product
// is absent from the catalog or the event log holds no events for it. On
// success the response carries the behavioral counts, the product economics,
// the bounded suggestion, and, when no discount was granted, up to three
// cheaper same-category alternatives. All monetary outputs are rounded to two
// places here, at the boundary, and nowhere earlier.
//
// Calling GetDiscount twice with unchanged stores yields identical output.
func (e *Engine) GetDiscount(productID string) (*models.DiscountResponse, error) {
	entry, ok := e.catalog.Lookup(productID)
	events := e.events.EventsFor(productID)
	if !ok || len(events) == 0 {
		return nil, fmt.Errorf("product %q: %w", productID, ErrProductNotFound)
	}

	counts := Aggregate(events)
	decision := Evaluate(entry, counts)
	metrics.RecordDiscountDecision(decision.Rule, decision.Clamped)

	alternatives := []models.AlternativeProduct{}
	if decision.Amount.IsZero() {
		alternatives = FindAlternatives(e.catalog, entry.Category, entry.Price, entry.ProductID)
		metrics.RecordAlternativeSearch(len(alternatives))
	}

	return &models.DiscountResponse{
		ProductID: entry.ProductID,

		Views:     counts.Views,
		Carts:     counts.Carts,
		Purchases: counts.Purchases,

		Price:           entry.Price.Round(2).InexactFloat64(),
		Cost:            entry.Cost.Round(2).InexactFloat64(),
		Margin:          entry.Margin().Round(2).InexactFloat64(),
		MaxSafeDiscount: decision.MaxSafe.InexactFloat64(),

		SuggestedDiscountPercent: decision.Percent.Round(2).InexactFloat64(),
		SuggestedDiscountAmount:  decision.Amount.Round(2).InexactFloat64(),
		Explanation:              decision.Explanation,

		CheaperAlternatives: alternatives,

		Rule: decision.Rule,
	}, nil
}
