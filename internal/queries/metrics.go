package queries

import (
	"payout-analytics/internal/shared/metrics"
)

const (
	opListOrders      = "list_orders"
	opTopProducts     = "top_products"
	opTopDesigns      = "top_designs"
	opEarningsSummary = "earnings_summary"
	opSalesSeries     = "sales_series"
	opEarningsSeries  = "earnings_series"
)

var (
	metricQueriesTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubQuery,
			Name:      "queries_total",
		},
		[]string{"operation", metrics.FieldErrorCode},
	)
)
