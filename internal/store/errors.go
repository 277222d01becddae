// Promodex - Behavioral Discount Recommendation Engine
// Copyright 2026 Promodex Contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/promodex/promodex

package store

import "fmt"

// LoadError indicates a data source could not be loaded or parsed. There is
// no safe empty-catalog fallback, so a LoadError at startup is fatal.
type LoadError struct {
	// Source is the path or logical name of the data source.
	Source string
	// Line is the 1-based row number of the offending record, 0 if the
	// failure was not tied to a specific row.
	Line int
	Err  error
}

func (e *LoadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("load %s: line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
