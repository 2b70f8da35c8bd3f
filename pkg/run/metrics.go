package run

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Collection pipeline metrics
	categoryCollectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventscope_category_collection_duration_seconds",
			Help:    "Time taken to collect one category",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60},
		},
		[]string{"category"},
	)

	categoryFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventscope_category_failures_total",
			Help: "Total number of categories aborted by a query failure",
		},
		[]string{"category"},
	)

	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventscope_runs_total",
			Help: "Total number of collection runs",
		},
		[]string{"status"}, // completed or failed
	)
)
