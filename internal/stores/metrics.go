package stores

import (
	"payout-analytics/internal/shared/metrics"
)

var (
	metricCacheHitsTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStore,
			Name:      "record_set_cache_hits_total",
		},
	)

	metricCacheMissesTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStore,
			Name:      "record_set_cache_misses_total",
		},
	)
)
