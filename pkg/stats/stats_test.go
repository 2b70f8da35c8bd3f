package stats

import (
	"testing"

	"github.com/sysvitals/eventscope/pkg/event"
)

func TestAggregatorIncrement(t *testing.T) {
	a := NewAggregator()

	a.Increment("SystemErrors", event.SeverityError)
	a.Increment("SystemErrors", event.SeverityCritical)
	a.Increment("KernelPowerEvents", event.SeverityCritical)
	a.Increment("ApplicationErrors", event.SeverityWarning)
	a.Increment("ReliabilityRecords", event.SeverityUnknown)

	if got := a.CategoryCount("SystemErrors"); got != 2 {
		t.Errorf("SystemErrors count = %d, want 2", got)
	}

	totals := a.Snapshot()
	if totals.Critical != 2 {
		t.Errorf("Critical = %d, want 2", totals.Critical)
	}
	if totals.Errors != 1 {
		t.Errorf("Errors = %d, want 1", totals.Errors)
	}
	if totals.Warnings != 1 {
		t.Errorf("Warnings = %d, want 1", totals.Warnings)
	}
	// Unknown severity counts toward the category but no severity rollup.
	if got := totals.Categories["ReliabilityRecords"]; got != 1 {
		t.Errorf("ReliabilityRecords = %d, want 1", got)
	}
	if got := totals.TotalEvents(); got != 5 {
		t.Errorf("TotalEvents = %d, want 5", got)
	}
}

func TestAggregatorMinidumps(t *testing.T) {
	a := NewAggregator()
	a.AddMinidump("Minidumps")
	a.AddMinidump("Minidumps")

	totals := a.Snapshot()
	if totals.Minidumps != 2 {
		t.Errorf("Minidumps = %d, want 2", totals.Minidumps)
	}
	if got := totals.Categories["Minidumps"]; got != 2 {
		t.Errorf("Categories[Minidumps] = %d, want 2", got)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	a := NewAggregator()
	a.Increment("SystemErrors", event.SeverityError)

	totals := a.Snapshot()
	totals.Categories["SystemErrors"] = 99

	if got := a.CategoryCount("SystemErrors"); got != 1 {
		t.Errorf("aggregator mutated through snapshot: %d", got)
	}
}

func TestEmptyAggregator(t *testing.T) {
	a := NewAggregator()
	totals := a.Snapshot()
	if totals.TotalEvents() != 0 || totals.Critical != 0 {
		t.Errorf("empty aggregator must report zeros: %+v", totals)
	}
}
