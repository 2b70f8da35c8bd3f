// Copyright (c) 2026, Sysvitals Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package source defines the query contract against the host event
// subsystem and its implementations.
package source

import (
	"context"
	"errors"
	"time"

	"github.com/sysvitals/eventscope/pkg/event"
)

// ErrNoEvents is returned by Query when no events exist in the requested
// window. It is a normal outcome, distinguishable from transport or
// permission failures, and terminates a category's batch loop.
var ErrNoEvents = errors.New("no events in range")

// Request describes one bounded query against the event subsystem.
type Request struct {
	// LogName selects the source log (e.g. "System", "Application").
	LogName string
	// Severities filters by severity. Empty means all severities.
	Severities []event.Severity
	// EventIDs filters by numeric identifier. Empty means all identifiers.
	EventIDs []uint32
	// Start is the inclusive lower time bound.
	Start time.Time
	// End is the exclusive upper time bound.
	End time.Time
	// MaxBatch caps the number of returned events. Must be positive.
	MaxBatch int
}

// Matches reports whether a raw event satisfies the request's log, severity,
// identifier, and window constraints.
func (r Request) Matches(e event.Raw) bool {
	if r.LogName != "" && e.LogName != r.LogName {
		return false
	}
	if !r.Start.IsZero() && e.Timestamp.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && !e.Timestamp.Before(r.End) {
		return false
	}
	if len(r.Severities) > 0 {
		found := false
		for _, s := range r.Severities {
			if e.Level == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(r.EventIDs) > 0 {
		found := false
		for _, id := range r.EventIDs {
			if e.EventID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Source is the single consumer-facing contract against the host operating
// system's event subsystem.
//
// Query returns at most MaxBatch events within [Start, End), ordered
// newest-first. Implementations MUST return exactly MaxBatch events when
// more exist in the window; the paginated collector treats a short batch as
// end of data. An empty window yields ErrNoEvents, never an empty slice.
type Source interface {
	Query(ctx context.Context, req Request) ([]event.Raw, error)
}
