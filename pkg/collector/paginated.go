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

package collector

import (
	"context"
	stderrors "errors"
	"log/slog"
	"time"

	"github.com/sysvitals/eventscope/pkg/category"
	"github.com/sysvitals/eventscope/pkg/errors"
	"github.com/sysvitals/eventscope/pkg/event"
	"github.com/sysvitals/eventscope/pkg/source"
)

// DefaultBatchSize is the fixed window size for paginated queries.
const DefaultBatchSize = 500

// fixedIDBatchCap bounds the single query issued per enumerated identifier.
const fixedIDBatchCap = 100

// Emit consumes one normalized event. A returned error is treated as a
// write failure: logged with category context and skipped, never fatal to
// the stream.
type Emit func(e event.Event) error

// Collector drives event retrieval for descriptor-based categories.
type Collector struct {
	// Source is the event subsystem queried.
	Source source.Source
	// BatchSize overrides DefaultBatchSize when positive.
	BatchSize int
}

// Collect retrieves every event for the category within [start, end),
// emitting each normalized record exactly once. The error, if any, carries
// the QUERY_FAILURE code and aborts only this category.
func (c *Collector) Collect(ctx context.Context, d category.Descriptor, start, end time.Time, emit Emit) error {
	switch d.Strategy {
	case category.StrategyFixedIDs:
		return c.collectFixedIDs(ctx, d, start, end, emit)
	default:
		return c.collectPaginated(ctx, d, start, end, emit)
	}
}

// collectPaginated walks the window backward in batches. The cursor is the
// exclusive upper bound and advances to the oldest timestamp of each
// processed batch, so strictly older events are fetched next.
func (c *Collector) collectPaginated(ctx context.Context, d category.Descriptor, start, end time.Time, emit Emit) error {
	batchSize := c.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	cursor := end
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		batch, err := c.Source.Query(ctx, source.Request{
			LogName:    d.LogName,
			Severities: d.Severities,
			EventIDs:   d.EventIDs,
			Start:      start,
			End:        cursor,
			MaxBatch:   batchSize,
		})
		if stderrors.Is(err, source.ErrNoEvents) {
			return nil
		}
		if err != nil {
			return errors.WrapWithContext(errors.ErrCodeQueryFailure,
				"event query failed", err,
				map[string]any{"category": d.Name, "log": d.LogName})
		}

		c.emitBatch(d, batch, emit)

		slog.Debug("processed batch",
			"category", d.Name,
			"events", len(batch),
			"cursor", cursor)

		// A short batch means the window is exhausted; the source contract
		// requires full batches while more events remain.
		if len(batch) < batchSize {
			return nil
		}
		cursor = batch[len(batch)-1].Timestamp
	}
}

// collectFixedIDs issues one bounded query per enumerated identifier. The
// same empty-vs-error distinction applies per query; a genuine failure
// aborts the whole category.
func (c *Collector) collectFixedIDs(ctx context.Context, d category.Descriptor, start, end time.Time, emit Emit) error {
	for _, id := range d.EventIDs {
		if err := ctx.Err(); err != nil {
			return err
		}

		batch, err := c.Source.Query(ctx, source.Request{
			LogName:    d.LogName,
			Severities: d.Severities,
			EventIDs:   []uint32{id},
			Start:      start,
			End:        end,
			MaxBatch:   fixedIDBatchCap,
		})
		if stderrors.Is(err, source.ErrNoEvents) {
			continue
		}
		if err != nil {
			return errors.WrapWithContext(errors.ErrCodeQueryFailure,
				"event query failed", err,
				map[string]any{"category": d.Name, "log": d.LogName, "eventId": id})
		}

		c.emitBatch(d, batch, emit)
	}
	return nil
}

// emitBatch normalizes and hands off each event one at a time; the batch is
// never buffered beyond this single-event handoff.
func (c *Collector) emitBatch(d category.Descriptor, batch []event.Raw, emit Emit) {
	for _, raw := range batch {
		rec := d.Normalize(raw)
		if err := emit(rec); err != nil {
			slog.Error("failed to write record, continuing",
				"category", d.Name,
				"eventId", rec.EventID,
				"error", err)
		}
	}
}
