package normalizers

import (
	"payout-analytics/internal/shared/metrics"
)

var (
	metricRowsNormalizedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "rows_normalized_total",
		},
	)

	// Earnings cells coerced to missing: the per-file data-quality signal.
	metricEarningsCoercedMissingTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "earnings_cells_coerced_missing_total",
		},
	)
)
