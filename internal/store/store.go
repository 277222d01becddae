// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

// Package store holds the two immutable datasets Promodex runs on: the
// product catalog and the behavioral event log. Both are loaded exactly once
// at process start from CSV sources and expose read-only access afterwards,
// so they are safe for unlimited concurrent reads without locking.
//
// Stores are plain values passed into the engine at construction time rather
// than package-level state; tests inject fixtures instead of real files.
package store

import "github.com/promodex/promodex/internal/models"

// CatalogStore holds one CatalogEntry per product, keyed by normalized
// product id. Immutable after construction.
type CatalogStore struct {
	entries []models.CatalogEntry
	byID    map[string]int
}

// NewCatalogStore builds a store from already-parsed entries. Later duplicates
// of a product id win, matching last-write semantics of the CSV source.
func NewCatalogStore(entries []models.CatalogEntry) *CatalogStore {
	byID := make(map[string]int, len(entries))
	for i, e := range entries {
		byID[e.ProductID] = i
	}
	return &CatalogStore{entries: entries, byID: byID}
}

// Lookup returns the catalog entry for the given product id.
func (s *CatalogStore) Lookup(productID string) (models.CatalogEntry, bool) {
	i, ok := s.byID[productID]
	if !ok {
		return models.CatalogEntry{}, false
	}
	return s.entries[i], true
}

// All returns every catalog entry in original source order. The returned
// slice is shared; callers must not modify it.
func (s *CatalogStore) All() []models.CatalogEntry {
	return s.entries
}

// Len returns the number of catalog entries.
func (s *CatalogStore) Len() int {
	return len(s.entries)
}

// EventStore holds the behavioral event log, indexed by product id.
// Immutable after construction.
type EventStore struct {
	events    []models.BehavioralEvent
	byProduct map[string][]models.BehavioralEvent
}

// NewEventStore builds a store from already-parsed events. Events referencing
// products absent from the catalog are kept; they are harmless and simply
// never surface in a response.
func NewEventStore(events []models.BehavioralEvent) *EventStore {
	byProduct := make(map[string][]models.BehavioralEvent)
	for _, ev := range events {
		byProduct[ev.ProductID] = append(byProduct[ev.ProductID], ev)
	}
	return &EventStore{events: events, byProduct: byProduct}
}

// EventsFor returns all events recorded for the given product id, possibly
// empty. The returned slice is shared; callers must not modify it.
func (s *EventStore) EventsFor(productID string) []models.BehavioralEvent {
	return s.byProduct[productID]
}

// Len returns the total number of events in the log.
func (s *EventStore) Len() int {
	return len(s.events)
}
