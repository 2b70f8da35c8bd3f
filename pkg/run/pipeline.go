package run

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/sysvitals/eventscope/pkg/category"
	"github.com/sysvitals/eventscope/pkg/collector"
	"github.com/sysvitals/eventscope/pkg/errors"
	"github.com/sysvitals/eventscope/pkg/event"
	"github.com/sysvitals/eventscope/pkg/logging"
	"github.com/sysvitals/eventscope/pkg/report"
	"github.com/sysvitals/eventscope/pkg/sink"
	"github.com/sysvitals/eventscope/pkg/source"
	"github.com/sysvitals/eventscope/pkg/stats"
)

const (
	runDirPrefix   = "EventLogs_"
	runDirTimeFmt  = "20060102_150405"
	collectionLog  = "Collection_Log.txt"
	rawLogsDirName = "Raw_Logs"
)

// Pipeline executes one collection run: strictly sequential across
// categories, one aggregator instance passed explicitly, per-category fault
// isolation. One category's failure never aborts the run; only a startup
// failure does.
type Pipeline struct {
	Run    *Run
	Source source.Source

	// Aggregator is the single statistics instance for this run. If nil,
	// a fresh one is created.
	Aggregator *stats.Aggregator
}

// Execute runs the pipeline and renders the aggregate summary. The summary
// renders even when every category failed, stating zero counts.
func (p *Pipeline) Execute(ctx context.Context) (*Result, error) {
	if p.Aggregator == nil {
		p.Aggregator = stats.NewAggregator()
	}

	dir := filepath.Join(p.Run.OutputDir, runDirPrefix+p.Run.Window.End.Format(runDirTimeFmt))
	if err := p.prepareRunDir(dir); err != nil {
		runsTotal.WithLabelValues("failed").Inc()
		return nil, err
	}

	if !p.Run.Simulate {
		closeLog, err := logging.AttachRunLog(filepath.Join(dir, collectionLog))
		if err == nil {
			defer func() {
				if cerr := closeLog(); cerr != nil {
					slog.Warn("failed to close collection log", "error", cerr)
				}
			}()
		} else {
			slog.Warn("collection log unavailable, logging to stderr only", "error", err)
		}
	}

	slog.Info("collection run starting",
		"run", p.Run.ID,
		"windowStart", p.Run.Window.Start,
		"windowEnd", p.Run.Window.End,
		"categories", p.Run.Categories,
		"simulate", p.Run.Simulate)

	result := &Result{
		Dir:    dir,
		Failed: make(map[string]error),
	}

	for _, name := range p.Run.Categories {
		if err := ctx.Err(); err != nil {
			// Process-level cancellation: log cleanly and stop. Partially
			// written category files are left as-is.
			slog.Info("collection interrupted", "run", p.Run.ID)
			runsTotal.WithLabelValues("failed").Inc()
			return nil, err
		}

		d, _ := category.Get(name)
		p.Aggregator.Register(name)

		start := time.Now()
		files, err := p.collectCategory(ctx, dir, d)
		categoryCollectionDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

		result.Files = append(result.Files, files...)
		if err != nil {
			categoryFailuresTotal.WithLabelValues(name).Inc()
			result.Failed[name] = err
			slog.Error("category collection failed, continuing",
				"category", name, "error", err)
		}
	}

	totals := p.Aggregator.Snapshot()
	result.Totals = totals

	summary := report.NewSummary(p.Run.ID,
		p.Run.Window.Start, p.Run.Window.End, time.Now().UTC(),
		p.Run.Simulate, totals)
	summaryPath, err := summary.Write(dir)
	if err != nil {
		slog.Error("failed to write summary report", "error", err)
	}
	result.SummaryPath = summaryPath

	slog.Info("collection run complete",
		"run", p.Run.ID,
		"events", totals.TotalEvents(),
		"critical", totals.Critical,
		"errors", totals.Errors,
		"failedCategories", len(result.Failed))
	runsTotal.WithLabelValues("completed").Inc()

	return result, nil
}

// prepareRunDir creates the run directory and the reserved Raw_Logs
// subdirectory. Failure here is fatal to the run: nothing downstream can
// proceed without an output directory. Simulate mode creates nothing.
func (p *Pipeline) prepareRunDir(dir string) error {
	if p.Run.Simulate {
		return nil
	}
	if err := os.MkdirAll(filepath.Join(dir, rawLogsDirName), 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeStartupFailure,
			"cannot create output directory", err)
	}
	return nil
}

// collectCategory collects one category into one sink per requested format.
// The returned file reports include simulate-mode counts.
func (p *Pipeline) collectCategory(ctx context.Context, dir string, d category.Descriptor) ([]FileReport, error) {
	sinks := make([]sink.Sink, 0, len(p.Run.Formats))
	for _, f := range p.Run.Formats {
		path := filepath.Join(dir, fmt.Sprintf("%s.%s", d.Name, f))
		sinks = append(sinks, sink.New(f, path, d.Headers, d.Name, p.Run.Simulate))
	}

	var collectErr error
	if d.Strategy == category.StrategyFilesystem {
		collectErr = p.scanMinidumps(ctx, d, sinks)
	} else {
		c := &collector.Collector{Source: p.Source}
		collectErr = c.Collect(ctx, d, p.Run.Window.Start, p.Run.Window.End, func(e event.Event) error {
			if !p.Run.Filter.Match(e) {
				return nil
			}
			for _, s := range sinks {
				if err := s.Write(e); err != nil {
					slog.Error("failed to write record, continuing",
						"category", d.Name, "path", s.Path(), "error",
						errors.Wrap(errors.ErrCodeWriteFailure, "row write failed", err))
				}
			}
			p.Aggregator.Increment(d.Name, e.Severity)
			return nil
		})
	}

	files := make([]FileReport, 0, len(sinks))
	for _, s := range sinks {
		if err := s.Close(); err != nil {
			slog.Error("failed to finalize export",
				"category", d.Name, "path", s.Path(), "error",
				errors.Wrap(errors.ErrCodeWriteFailure, "export close failed", err))
		}
		files = append(files, FileReport{Category: d.Name, Path: s.Path(), Rows: s.Rows()})
	}
	return files, collectErr
}

// scanMinidumps lists crash-dump files in the window and writes one row per
// file to every sink.
func (p *Pipeline) scanMinidumps(ctx context.Context, d category.Descriptor, sinks []sink.Sink) error {
	scanner := &collector.MinidumpScanner{Dir: p.Run.DumpDir}
	dumps, err := scanner.Scan(ctx, p.Run.Window.Start, p.Run.Window.End)
	if err != nil {
		return errors.WrapWithContext(errors.ErrCodeQueryFailure,
			"minidump scan failed", err, map[string]any{"category": d.Name, "dir": p.Run.DumpDir})
	}

	for _, dump := range dumps {
		row := sink.MinidumpRow(dump)
		for _, s := range sinks {
			if werr := s.WriteRow(row); werr != nil {
				slog.Error("failed to write record, continuing",
					"category", d.Name, "path", s.Path(), "error", werr)
			}
		}
		p.Aggregator.AddMinidump(d.Name)
	}
	return nil
}
