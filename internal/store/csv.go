// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/promodex/promodex/internal/models"
)

// Required column headers. Sources may carry extra columns (the upstream
// catalog export does); unknown columns are ignored and required columns are
// matched by header name, case-insensitively.
var (
	catalogColumns = []string{"product_id", "product_name", "price", "cost", "category"}
	eventColumns   = []string{"event_time", "event_type", "product_id"}
)

// eventTimeLayouts are the accepted timestamp formats, tried in order.
var eventTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// LoadCatalog reads the product catalog CSV at path. Any failure, including a
// missing file, returns a *LoadError; callers treat it as fatal.
func LoadCatalog(path string) (*CatalogStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return ReadCatalog(f, path)
}

// LoadEvents reads the behavioral event CSV at path. Any failure, including a
// missing file, returns a *LoadError; callers treat it as fatal.
func LoadEvents(path string) (*EventStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{Source: path, Err: err}
	}
	defer f.Close()
	return ReadEvents(f, path)
}

// ReadCatalog parses catalog rows from r. The source name is used only for
// error reporting.
func ReadCatalog(r io.Reader, source string) (*CatalogStore, error) {
	rows, cols, err := readTable(r, source, catalogColumns)
	if err != nil {
		return nil, err
	}

	entries := make([]models.CatalogEntry, 0, len(rows))
	for i, row := range rows {
		line := i + 2 // 1-based, after the header row

		productID := strings.TrimSpace(row[cols["product_id"]])
		if productID == "" {
			return nil, &LoadError{Source: source, Line: line, Err: fmt.Errorf("empty product_id")}
		}

		price, err := parseMoney(row[cols["price"]], "price")
		if err != nil {
			return nil, &LoadError{Source: source, Line: line, Err: err}
		}
		cost, err := parseMoney(row[cols["cost"]], "cost")
		if err != nil {
			return nil, &LoadError{Source: source, Line: line, Err: err}
		}

		entries = append(entries, models.CatalogEntry{
			ProductID: productID,
			Name:      strings.TrimSpace(row[cols["product_name"]]),
			Price:     price,
			Cost:      cost,
			Category:  strings.TrimSpace(row[cols["category"]]),
		})
	}

	return NewCatalogStore(entries), nil
}

// ReadEvents parses behavioral event rows from r. Event kinds outside the
// known view/cart/purchase set are loaded as-is; the aggregator ignores them.
func ReadEvents(r io.Reader, source string) (*EventStore, error) {
	rows, cols, err := readTable(r, source, eventColumns)
	if err != nil {
		return nil, err
	}

	events := make([]models.BehavioralEvent, 0, len(rows))
	for i, row := range rows {
		line := i + 2

		productID := strings.TrimSpace(row[cols["product_id"]])
		if productID == "" {
			return nil, &LoadError{Source: source, Line: line, Err: fmt.Errorf("empty product_id")}
		}

		ts, err := parseEventTime(row[cols["event_time"]])
		if err != nil {
			return nil, &LoadError{Source: source, Line: line, Err: err}
		}

		kind := models.EventKind(strings.ToLower(strings.TrimSpace(row[cols["event_type"]])))
		events = append(events, models.BehavioralEvent{
			ProductID: productID,
			Kind:      kind,
			Time:      ts,
		})
	}

	return NewEventStore(events), nil
}

// readTable reads all CSV records and resolves the required column indexes
// from the header row.
func readTable(r io.Reader, source string, required []string) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, &LoadError{Source: source, Err: fmt.Errorf("empty source")}
	}
	if err != nil {
		return nil, nil, &LoadError{Source: source, Err: err}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, &LoadError{Source: source, Err: fmt.Errorf("missing required column %q", name)}
		}
	}

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, nil, &LoadError{Source: source, Err: err}
	}
	return rows, cols, nil
}

// parseMoney parses a non-negative decimal money field.
func parseMoney(raw, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", field, raw, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative %s %q", field, raw)
	}
	return d, nil
}

// parseEventTime parses a timestamp using the accepted layouts.
func parseEventTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range eventTimeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid event_time %q", raw)
}
