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

// Package report renders the aggregate summary for a collection run. The
// summary consumes only the running statistics, never the full record set,
// which is what keeps it correct when categories stream without retention.
package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sysvitals/eventscope/pkg/errors"
	"github.com/sysvitals/eventscope/pkg/stats"
	"github.com/sysvitals/eventscope/pkg/version"
)

// SummaryFileName is the aggregate report file name inside the run directory.
const SummaryFileName = "Summary_Report.html"

// Summary is the data rendered into the aggregate dashboard.
type Summary struct {
	GeneratedAt time.Time
	RunID       string
	WindowStart time.Time
	WindowEnd   time.Time
	Hostname    string
	Kernel      string
	Simulated   bool

	Totals          stats.Totals
	Recommendations []string
}

// NewSummary assembles a Summary from run metadata and the final totals,
// deriving the recommendation block from the embedded threshold rules.
func NewSummary(runID string, start, end, generatedAt time.Time, simulated bool, totals stats.Totals) Summary {
	host, _ := os.Hostname()
	return Summary{
		GeneratedAt:     generatedAt,
		RunID:           runID,
		WindowStart:     start,
		WindowEnd:       end,
		Hostname:        host,
		Kernel:          hostKernel(),
		Simulated:       simulated,
		Totals:          totals,
		Recommendations: BuildRecommendations(totals),
	}
}

// hostKernel reads the running kernel release where the platform exposes
// it. Missing or unparseable releases yield the raw string or "".
func hostKernel() string {
	data, err := os.ReadFile("/proc/sys/kernel/osrelease")
	if err != nil {
		return ""
	}
	raw := strings.TrimSpace(string(data))
	rel, err := version.ParseRelease(raw)
	if err != nil {
		return raw
	}
	return rel.Full()
}

// categoryRow is one line of the per-category count table.
type categoryRow struct {
	Name  string
	Count int
}

var (
	camelBoundaryRe = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	titleCaser      = cases.Title(language.English)
)

// displayName turns a category identifier into a readable heading,
// e.g. "KernelPowerEvents" becomes "Kernel Power Events".
func displayName(name string) string {
	spaced := camelBoundaryRe.ReplaceAllString(name, `$1 $2`)
	return titleCaser.String(strings.ToLower(spaced))
}

// categoryRows returns the per-category counts sorted by name for stable,
// re-runnable output.
func (s Summary) categoryRows() []categoryRow {
	rows := make([]categoryRow, 0, len(s.Totals.Categories))
	for name, count := range s.Totals.Categories {
		rows = append(rows, categoryRow{Name: displayName(name), Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows
}

// Render writes the summary document to the writer-independent byte form.
// Output is deterministic for identical inputs: re-rendering the same
// Summary yields byte-equivalent documents.
func (s Summary) Render() ([]byte, error) {
	var b strings.Builder
	err := summaryTmpl.Execute(&b, struct {
		Summary
		Categories []categoryRow
	}{s, s.categoryRows()})
	if err != nil {
		return nil, fmt.Errorf("rendering summary: %w", err)
	}
	return []byte(b.String()), nil
}

// Write renders the summary into dir. In simulate mode nothing is
// persisted; the would-be path is still returned.
func (s Summary) Write(dir string) (string, error) {
	path := filepath.Join(dir, SummaryFileName)
	if s.Simulated {
		return path, nil
	}

	data, err := s.Render()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeWriteFailure, "summary render failed", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(errors.ErrCodeWriteFailure, "summary write failed", err)
	}
	return path, nil
}

var summaryTmpl = template.Must(template.New("summary").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Diagnostic Summary Report</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #1a202c; }
table { border-collapse: collapse; min-width: 24em; margin-bottom: 1.5em; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: left; }
th { background: #2d3748; color: #fff; }
.meta { color: #555; font-size: 0.9em; }
.rec { background: #fffbea; border-left: 4px solid #d69e2e; padding: 0.5em 1em; margin: 0.5em 0; }
.sim { color: #b7791f; font-weight: bold; }
</style>
</head>
<body>
<h1>Diagnostic Summary Report</h1>
<p class="meta">Generated: {{.GeneratedAt.UTC.Format "2006-01-02T15:04:05Z07:00"}}<br>
Run: {{.RunID}}<br>
Host: {{.Hostname}}{{if .Kernel}} (kernel {{.Kernel}}){{end}}<br>
Window: {{.WindowStart.UTC.Format "2006-01-02T15:04:05Z07:00"}} &ndash; {{.WindowEnd.UTC.Format "2006-01-02T15:04:05Z07:00"}}</p>
{{if .Simulated}}<p class="sim">Simulate mode: no category files were written.</p>{{end}}

<h2>Event Counts</h2>
<table>
<tr><th>Category</th><th>Count</th></tr>
{{range .Categories}}<tr><td>{{.Name}}</td><td>{{.Count}}</td></tr>
{{end}}</table>

<h2>Severity Totals</h2>
<table>
<tr><th>Severity</th><th>Count</th></tr>
<tr><td>Critical</td><td>{{.Totals.Critical}}</td></tr>
<tr><td>Error</td><td>{{.Totals.Errors}}</td></tr>
<tr><td>Warning</td><td>{{.Totals.Warnings}}</td></tr>
<tr><td>Minidump Files</td><td>{{.Totals.Minidumps}}</td></tr>
</table>

<h2>Recommendations</h2>
{{if .Recommendations}}{{range .Recommendations}}<div class="rec">{{.}}</div>
{{end}}{{else}}<p>No recommendations.</p>{{end}}
</body>
</html>
`))
