package collector

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sysvitals/eventscope/pkg/category"
	"github.com/sysvitals/eventscope/pkg/errors"
	"github.com/sysvitals/eventscope/pkg/event"
	"github.com/sysvitals/eventscope/pkg/source"
)

var windowEnd = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

// spreadEvents produces n System error events at distinct one-minute
// intervals walking back from windowEnd.
func spreadEvents(n int) []event.Raw {
	events := make([]event.Raw, n)
	for i := range events {
		events[i] = event.Raw{
			Timestamp: windowEnd.Add(-time.Duration(i+1) * time.Minute),
			EventID:   uint32(7000 + i),
			Level:     event.SeverityError,
			LogName:   "System",
			Provider:  "Service Control Manager",
			Message:   fmt.Sprintf("service failure %d", i),
		}
	}
	return events
}

func systemErrorsDescriptor(t *testing.T) category.Descriptor {
	t.Helper()
	d, ok := category.Get(category.SystemErrors)
	require.True(t, ok)
	return d
}

func TestPaginatedExactlyOnce(t *testing.T) {
	// 10 events with batch size 3 forces four batch calls, the last short.
	c := &Collector{
		Source:    source.NewStatic(spreadEvents(10)),
		BatchSize: 3,
	}

	seen := map[uint32]int{}
	err := c.Collect(context.Background(), systemErrorsDescriptor(t),
		windowEnd.Add(-time.Hour), windowEnd,
		func(e event.Event) error {
			seen[e.EventID]++
			return nil
		})
	require.NoError(t, err)

	require.Len(t, seen, 10, "every event in the window emitted")
	for id, n := range seen {
		assert.Equal(t, 1, n, "event %d emitted exactly once", id)
	}
}

func TestPaginatedBatchBoundaryNoDuplicates(t *testing.T) {
	// Event count equal to a multiple of the batch size exercises the
	// cursor boundary: the final call must yield ErrNoEvents, not a
	// duplicate of the oldest batch.
	c := &Collector{
		Source:    source.NewStatic(spreadEvents(6)),
		BatchSize: 3,
	}

	var count int
	err := c.Collect(context.Background(), systemErrorsDescriptor(t),
		windowEnd.Add(-time.Hour), windowEnd,
		func(event.Event) error {
			count++
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestPaginatedIdempotent(t *testing.T) {
	src := source.NewStatic(spreadEvents(25))
	c := &Collector{Source: src, BatchSize: 7}

	run := func() int {
		var count int
		err := c.Collect(context.Background(), systemErrorsDescriptor(t),
			windowEnd.Add(-time.Hour), windowEnd,
			func(event.Event) error {
				count++
				return nil
			})
		require.NoError(t, err)
		return count
	}

	first := run()
	second := run()
	assert.Equal(t, 25, first)
	assert.Equal(t, first, second, "re-running the same window must yield identical counts")
}

func TestPaginatedEmptyWindow(t *testing.T) {
	c := &Collector{Source: source.NewStatic(nil)}

	var count int
	err := c.Collect(context.Background(), systemErrorsDescriptor(t),
		windowEnd.Add(-time.Hour), windowEnd,
		func(event.Event) error {
			count++
			return nil
		})
	require.NoError(t, err, "empty result is not an error")
	assert.Zero(t, count)
}

// failingSource simulates a transport failure from the event subsystem.
type failingSource struct{}

func (failingSource) Query(context.Context, source.Request) ([]event.Raw, error) {
	return nil, fmt.Errorf("rpc: access denied")
}

func TestPaginatedQueryFailure(t *testing.T) {
	c := &Collector{Source: failingSource{}}

	err := c.Collect(context.Background(), systemErrorsDescriptor(t),
		windowEnd.Add(-time.Hour), windowEnd,
		func(event.Event) error { return nil })
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeQueryFailure))
}

func TestPaginatedWriteFailureContinues(t *testing.T) {
	c := &Collector{
		Source:    source.NewStatic(spreadEvents(5)),
		BatchSize: 10,
	}

	var attempts int
	err := c.Collect(context.Background(), systemErrorsDescriptor(t),
		windowEnd.Add(-time.Hour), windowEnd,
		func(e event.Event) error {
			attempts++
			if e.EventID == 7002 {
				return fmt.Errorf("disk full")
			}
			return nil
		})
	require.NoError(t, err, "a single failed row must not stop the stream")
	assert.Equal(t, 5, attempts)
}

func TestPaginatedCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &Collector{Source: source.NewStatic(spreadEvents(5))}
	err := c.Collect(ctx, systemErrorsDescriptor(t),
		windowEnd.Add(-time.Hour), windowEnd,
		func(event.Event) error { return nil })
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFixedIDCollect(t *testing.T) {
	events := []event.Raw{
		{Timestamp: windowEnd.Add(-10 * time.Minute), EventID: 47, Level: event.SeverityError, LogName: "System", Provider: "WHEA-Logger"},
		{Timestamp: windowEnd.Add(-20 * time.Minute), EventID: 47, Level: event.SeverityError, LogName: "System", Provider: "WHEA-Logger"},
		{Timestamp: windowEnd.Add(-30 * time.Minute), EventID: 7, Level: event.SeverityWarning, LogName: "System", Provider: "disk"},
		// Outside the enumerated hardware identifiers; must not be emitted.
		{Timestamp: windowEnd.Add(-5 * time.Minute), EventID: 7000, Level: event.SeverityError, LogName: "System"},
	}

	d, ok := category.Get(category.HardwareErrors)
	require.True(t, ok)

	c := &Collector{Source: source.NewStatic(events)}

	var got []uint32
	err := c.Collect(context.Background(), d,
		windowEnd.Add(-time.Hour), windowEnd,
		func(e event.Event) error {
			got = append(got, e.EventID)
			return nil
		})
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint32{47, 47, 7}, got)
}

func TestFixedIDQueryFailure(t *testing.T) {
	d, ok := category.Get(category.ReliabilityRecords)
	require.True(t, ok)

	c := &Collector{Source: failingSource{}}
	err := c.Collect(context.Background(), d,
		windowEnd.Add(-time.Hour), windowEnd,
		func(event.Event) error { return nil })
	assert.True(t, errors.IsCode(err, errors.ErrCodeQueryFailure))
}
