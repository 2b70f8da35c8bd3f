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

// Package sink provides the append-only output writers for collected
// events. Row-oriented sinks persist one record at a time with O(1) memory;
// document-oriented sinks buffer one category and render once on Close.
package sink

import (
	"log/slog"

	"github.com/sysvitals/eventscope/pkg/event"
)

// Format represents the output format type.
type Format string

const (
	// FormatCSV streams one row per record.
	FormatCSV Format = "csv"
	// FormatHTML buffers the category and renders one document.
	FormatHTML Format = "html"
	// FormatText buffers the category and renders plain text.
	FormatText Format = "txt"
)

func (f Format) IsUnknown() bool {
	switch f {
	case FormatCSV, FormatHTML, FormatText:
		return false
	default:
		return true
	}
}

// Streaming reports whether the format persists records incrementally.
func (f Format) Streaming() bool {
	return f == FormatCSV
}

// SupportedFormats returns a list of all supported output formats.
func SupportedFormats() []string {
	return []string{
		string(FormatCSV),
		string(FormatHTML),
		string(FormatText),
	}
}

// Sink consumes normalized events for one category. Write is called once
// per record as it is produced; Close flushes or renders and releases the
// underlying file.
type Sink interface {
	// Write appends one record.
	Write(e event.Event) error
	// WriteRow appends pre-rendered row cells. Used by the minidump
	// scanner, whose records are not Events.
	WriteRow(row []string) error
	// Close finalizes the output. For document formats this renders the
	// buffered category.
	Close() error
	// Rows returns the number of records accepted, including in simulate
	// mode where nothing is persisted.
	Rows() int
	// Path returns the target path, reported even in simulate mode.
	Path() string
}

// New creates a sink for the format writing to path. In simulate mode the
// sink accepts records and reports counts and target paths but persists
// nothing.
func New(format Format, path string, headers []string, title string, simulate bool) Sink {
	switch format {
	case FormatHTML:
		return newDocument(path, headers, title, formatHTML, simulate)
	case FormatText:
		return newDocument(path, headers, title, formatText, simulate)
	case FormatCSV:
		return NewCSV(path, headers, simulate)
	default:
		slog.Warn("unknown format, defaulting to CSV", "format", format)
		return NewCSV(path, headers, simulate)
	}
}
