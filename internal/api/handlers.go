// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package api

import (
	"time"

	"github.com/promodex/promodex/internal/config"
	"github.com/promodex/promodex/internal/engine"
	"github.com/promodex/promodex/internal/store"
)

// Handler holds the dependencies shared by all HTTP handlers. The stores are
// immutable after load and the engine is stateless, so a single Handler
// serves all requests without locking.
type Handler struct {
	engine    *engine.Engine
	catalog   *store.CatalogStore
	events    *store.EventStore
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a Handler over the loaded stores.
func NewHandler(eng *engine.Engine, catalog *store.CatalogStore, events *store.EventStore, cfg *config.Config) *Handler {
	return &Handler{
		engine:    eng,
		catalog:   catalog,
		events:    events,
		config:    cfg,
		startTime: time.Now(),
	}
}
