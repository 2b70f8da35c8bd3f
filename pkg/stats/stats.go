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

// Package stats maintains the running statistics for one collection run.
// The aggregator is updated exactly once per normalized record, independent
// of whether sinks retain the record, which is what allows the summary
// report to work even though most categories stream without buffering.
package stats

import (
	"github.com/sysvitals/eventscope/pkg/event"
)

// Aggregator holds running counters keyed by category and severity.
// One instance is passed explicitly through the pipeline; the sequential
// collection model guarantees a single mutator at a time, so no locking
// is required.
type Aggregator struct {
	categories map[string]int
	critical   int
	errors     int
	warnings   int
	minidumps  int
}

// NewAggregator creates an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		categories: make(map[string]int),
	}
}

// Register ensures the category appears in the totals even when it produces
// zero events or fails to collect. The summary states zero counts rather
// than omitting sections.
func (a *Aggregator) Register(category string) {
	if _, ok := a.categories[category]; !ok {
		a.categories[category] = 0
	}
}

// Increment records one normalized event for the category. Called exactly
// once per Event regardless of sink mode.
func (a *Aggregator) Increment(category string, sev event.Severity) {
	a.categories[category]++
	switch sev {
	case event.SeverityCritical:
		a.critical++
	case event.SeverityError:
		a.errors++
	case event.SeverityWarning:
		a.warnings++
	}
	eventsProcessedTotal.WithLabelValues(category, sev.String()).Inc()
}

// AddMinidump records one crash-dump file found by the scanner.
func (a *Aggregator) AddMinidump(category string) {
	a.categories[category]++
	a.minidumps++
	eventsProcessedTotal.WithLabelValues(category, "file").Inc()
}

// CategoryCount returns the number of records processed for the category.
func (a *Aggregator) CategoryCount(name string) int {
	return a.categories[name]
}

// Totals is a read-only view of the aggregator, taken by the report
// renderer at the end of the run.
type Totals struct {
	Categories map[string]int
	Critical   int
	Errors     int
	Warnings   int
	Minidumps  int
}

// Snapshot returns a copy of the current counters.
func (a *Aggregator) Snapshot() Totals {
	cats := make(map[string]int, len(a.categories))
	for k, v := range a.categories {
		cats[k] = v
	}
	return Totals{
		Categories: cats,
		Critical:   a.critical,
		Errors:     a.errors,
		Warnings:   a.warnings,
		Minidumps:  a.minidumps,
	}
}

// TotalEvents returns the sum of all per-category counts.
func (t Totals) TotalEvents() int {
	total := 0
	for _, c := range t.Categories {
		total += c
	}
	return total
}
