package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noFilters = promauto.NewCounter(prometheus.CounterOpts{
		Name: "diecastfinder_filters_total",
		Help: "The total number of processed filter requests",
	})
	noDetails = promauto.NewCounter(prometheus.CounterOpts{
		Name: "diecastfinder_details_total",
		Help: "The total number of opened detail views",
	})
	rejectedSelections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "diecastfinder_selection_rejected_total",
		Help: "The total number of rejected selection changes",
	})
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "diecastfinder_cache_hits_total",
		Help: "The total number of responses served from cache",
	})
	totalModels = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "diecastfinder_models",
		Help: "The number of models in the catalog",
	})
	activeSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "diecastfinder_sessions",
		Help: "The number of sessions with selection state",
	})
)
