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

package run

import (
	"time"

	"github.com/google/uuid"

	"github.com/sysvitals/eventscope/pkg/category"
	"github.com/sysvitals/eventscope/pkg/errors"
	"github.com/sysvitals/eventscope/pkg/filter"
	"github.com/sysvitals/eventscope/pkg/sink"
	"github.com/sysvitals/eventscope/pkg/stats"
)

// Window is the collection time range. End is the exclusive upper bound and
// the initial pagination cursor; it is stamped once at run construction,
// never read from the clock inside collectors, so pagination is
// deterministic under test.
type Window struct {
	Start time.Time
	End   time.Time
}

// Run describes one collection run. It is created once at pipeline start
// and read-only for the remainder of execution.
type Run struct {
	ID         string
	Window     Window
	OutputDir  string
	Categories []string
	Formats    []sink.Format
	Filter     *filter.Filter
	// DumpDir is the crash-dump directory scanned by the Minidumps category.
	DumpDir string
	// Simulate suppresses all filesystem writes while still reporting the
	// counts and paths the run would have produced.
	Simulate bool
	Verbose  bool
}

// New validates the requested categories and formats and stamps a run ID
// and the collection window.
func New(outputDir string, hours int, categories []string, formats []sink.Format, f *filter.Filter, dumpDir string, simulate, verbose bool) (*Run, error) {
	if hours <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "time range must be a positive number of hours")
	}
	if len(categories) == 0 {
		categories = category.Names()
	}
	for _, name := range categories {
		if _, ok := category.Get(name); !ok {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"unknown category", map[string]any{"category": name})
		}
	}
	if len(formats) == 0 {
		formats = []sink.Format{sink.FormatCSV}
	}
	for _, f := range formats {
		if f.IsUnknown() {
			return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
				"unknown output format", map[string]any{"format": string(f)})
		}
	}

	end := time.Now().UTC()
	return &Run{
		ID:         uuid.New().String(),
		Window:     Window{Start: end.Add(-time.Duration(hours) * time.Hour), End: end},
		OutputDir:  outputDir,
		Categories: categories,
		Formats:    formats,
		Filter:     f,
		DumpDir:    dumpDir,
		Simulate:   simulate,
		Verbose:    verbose,
	}, nil
}

// FileReport describes one export produced (or, in simulate mode, that
// would have been produced) for a category.
type FileReport struct {
	Category string
	Path     string
	Rows     int
}

// Result summarizes a completed run.
type Result struct {
	// Dir is the run directory under the requested output directory.
	Dir string
	// SummaryPath is the location of the aggregate report.
	SummaryPath string
	// Files lists every category export with its row count.
	Files []FileReport
	// Failed maps categories that aborted to their collection error.
	Failed map[string]error
	// Totals is the final aggregator snapshot.
	Totals stats.Totals
}
