package stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// eventsProcessedTotal mirrors the aggregator increments so a scrape of
	// the process (when embedded in a scheduler) sees the same counts the
	// summary report renders.
	eventsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventscope_events_processed_total",
			Help: "Total number of normalized events processed",
		},
		[]string{"category", "severity"},
	)
)
