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

package category

import (
	"github.com/sysvitals/eventscope/pkg/event"
)

// Strategy selects how a category's events are retrieved.
type Strategy string

const (
	// StrategyPaginated walks the full time window in cursor-bounded batches.
	StrategyPaginated Strategy = "paginated"
	// StrategyFixedIDs issues one bounded query per enumerated event identifier.
	StrategyFixedIDs Strategy = "fixed-ids"
	// StrategyFilesystem scans a directory for files modified in the window.
	StrategyFilesystem Strategy = "filesystem"
)

// Category names. These are also the export file base names.
const (
	SystemErrors       = "SystemErrors"
	ApplicationErrors  = "ApplicationErrors"
	KernelPowerEvents  = "KernelPowerEvents"
	BugCheckEvents     = "BugCheckEvents"
	HardwareErrors     = "HardwareErrors"
	ReliabilityRecords = "ReliabilityRecords"
	Minidumps          = "Minidumps"
)

// Descriptor statically defines one independently-collected event category:
// where its events come from, how they are retrieved, how a raw event is
// normalized, and the canonical export headers. Descriptors are never
// mutated.
type Descriptor struct {
	// Name identifies the category and names its export files.
	Name string
	// Strategy selects the retrieval mode.
	Strategy Strategy
	// LogName is the source log queried (empty for filesystem categories).
	LogName string
	// Severities constrains queries; empty means all severities.
	Severities []event.Severity
	// EventIDs constrains queries to specific identifiers. For
	// StrategyFixedIDs one query is issued per identifier; for
	// StrategyPaginated a non-empty list turns the category into a
	// signature query.
	EventIDs []uint32
	// Headers are the canonical column headers for row-oriented exports.
	Headers []string
	// Normalize converts one raw source event into the canonical record.
	// Selected once per category, never re-dispatched per event.
	Normalize func(event.Raw) event.Event
}

// EventHeaders are the default export columns for event categories.
var EventHeaders = []string{
	"Timestamp", "EventID", "Severity", "LogName", "Provider", "Description", "Message",
}

// BugCheckHeaders extend the defaults with the extracted crash parameters.
var BugCheckHeaders = []string{
	"Timestamp", "EventID", "Severity", "LogName", "Provider", "Description", "Message",
	"BugCheckCode", "Param1", "Param2", "Param3", "Param4",
}

// MinidumpHeaders are the export columns for the crash-dump file scanner.
var MinidumpHeaders = []string{
	"FileName", "Path", "SizeBytes", "Created", "Modified",
}
