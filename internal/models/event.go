// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package models

import "time"

// EventKind is the closed enumeration of behavioral event types the discount
// rules understand. The event log may carry other kinds; aggregation ignores
// them rather than erroring so future kinds don't break existing deployments.
type EventKind string

const (
	EventView     EventKind = "view"
	EventCart     EventKind = "cart"
	EventPurchase EventKind = "purchase"
)

// BehavioralEvent is one shopper interaction row from the event log source.
//
// ProductID should reference a CatalogEntry but is not enforced: orphan events
// (no catalog match) are tolerated and simply never surface in a response.
type BehavioralEvent struct {
	ProductID string
	Kind      EventKind
	Time      time.Time
}
