package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysvitals/eventscope/pkg/stats"
)

var (
	testStart = time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	testGen   = time.Date(2026, 3, 10, 12, 0, 5, 0, time.UTC)
)

func totalsWith(counts map[string]int) stats.Totals {
	return stats.Totals{Categories: counts}
}

func TestBuildRecommendationsThresholds(t *testing.T) {
	tests := []struct {
		name         string
		counts       map[string]int
		wantContains []string
		wantLen      int
	}{
		{
			name:         "kernel power fires shutdown rule",
			counts:       map[string]int{"KernelPowerEvents": 3},
			wantContains: []string{"Unexpected shutdown"},
			wantLen:      1,
		},
		{
			name:         "bugcheck fires minidump analysis rule",
			counts:       map[string]int{"BugCheckEvents": 1},
			wantContains: []string{"minidump"},
			wantLen:      1,
		},
		{
			name:         "hardware fires diagnostics rule",
			counts:       map[string]int{"HardwareErrors": 2},
			wantContains: []string{"disk and memory diagnostics"},
			wantLen:      1,
		},
		{
			name:         "volume threshold requires strictly more",
			counts:       map[string]int{"SystemErrors": 25},
			wantContains: nil,
			wantLen:      0,
		},
		{
			name:         "volume threshold fires above",
			counts:       map[string]int{"SystemErrors": 26},
			wantContains: []string{"High volume"},
			wantLen:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildRecommendations(totalsWith(tt.counts))
			assert.Len(t, got, tt.wantLen)
			for _, want := range tt.wantContains {
				found := false
				for _, rec := range got {
					if strings.Contains(rec, want) {
						found = true
					}
				}
				assert.True(t, found, "expected a recommendation containing %q, got %v", want, got)
			}
		})
	}
}

func TestBuildRecommendationsFallback(t *testing.T) {
	got := BuildRecommendations(totalsWith(map[string]int{
		"SystemErrors": 0, "KernelPowerEvents": 0,
	}))
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "No critical events")
}

func TestBuildRecommendationsNoFallbackWhenEventsExist(t *testing.T) {
	// Events exist but no rule fires: no fallback, no noise.
	got := BuildRecommendations(totalsWith(map[string]int{"ApplicationErrors": 3}))
	assert.Empty(t, got)
}

func TestBuildRecommendationsMultiple(t *testing.T) {
	got := BuildRecommendations(totalsWith(map[string]int{
		"KernelPowerEvents": 3,
		"BugCheckEvents":    1,
	}))
	require.Len(t, got, 2)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Kernel Power Events", displayName("KernelPowerEvents"))
	assert.Equal(t, "Minidumps", displayName("Minidumps"))
	assert.Equal(t, "System Errors", displayName("SystemErrors"))
}

func TestSummaryRenderDeterministic(t *testing.T) {
	s := NewSummary("run-1", testStart, testEnd, testGen, false, totalsWith(map[string]int{
		"SystemErrors":      4,
		"KernelPowerEvents": 1,
	}))

	first, err := s.Render()
	require.NoError(t, err)
	second, err := s.Render()
	require.NoError(t, err)
	assert.Equal(t, first, second, "identical summaries must render byte-equivalent documents")
}

func TestSummaryWrite(t *testing.T) {
	dir := t.TempDir()
	s := NewSummary("run-1", testStart, testEnd, testGen, false, totalsWith(map[string]int{
		"KernelPowerEvents": 3,
		"BugCheckEvents":    1,
	}))

	path, err := s.Write(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, SummaryFileName), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "Kernel Power Events")
	assert.Contains(t, content, "Unexpected shutdown")
	assert.Contains(t, content, "minidump")
	assert.Contains(t, content, "run-1")
}

func TestSummaryWriteSimulate(t *testing.T) {
	dir := t.TempDir()
	s := NewSummary("run-1", testStart, testEnd, testGen, true, totalsWith(nil))

	path, err := s.Write(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, SummaryFileName), path)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSummaryZeroCountsRendered(t *testing.T) {
	s := NewSummary("run-1", testStart, testEnd, testGen, false, totalsWith(map[string]int{
		"SystemErrors":   0,
		"HardwareErrors": 0,
	}))

	data, err := s.Render()
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "System Errors")
	assert.Contains(t, content, "Hardware Errors")
	assert.Contains(t, content, "No critical events")
}
