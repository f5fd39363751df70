package aggregators

import (
	"time"

	"payout-analytics/internal/models"

	"github.com/shopspring/decimal"
)

// SeriesMetric selects what a time series aggregates per period.
type SeriesMetric string

const (
	// MetricSales counts orders per period.
	MetricSales SeriesMetric = "sales"
	// MetricEarnings sums total earnings per period.
	MetricEarnings SeriesMetric = "earnings"
)

// SeriesPoint is one period of a time series. Period is the formatted label
// for the requested granularity (2006-01-02, 2006-W01, or 2006-01).
type SeriesPoint struct {
	Period string          `json:"period"`
	Value  decimal.Decimal `json:"value"`
}

// BuildSeries buckets orders by period at the requested granularity,
// aggregates the metric, and enumerates every period between the minimum and
// maximum observed period inclusive. Periods with no activity appear with
// value 0 so downstream charts render continuous axes. An empty input yields
// an empty series, not a single synthetic zero point.
func BuildSeries(orders []*models.Order, granularity models.Granularity, metric SeriesMetric) []SeriesPoint {
	series := make([]SeriesPoint, 0, len(orders))
	if len(orders) == 0 {
		return series
	}

	var minPeriod, maxPeriod time.Time
	byPeriod := make(map[time.Time]decimal.Decimal)
	for i, o := range orders {
		period := granularity.PeriodStart(o.OrderDate)
		if i == 0 || period.Before(minPeriod) {
			minPeriod = period
		}
		if i == 0 || period.After(maxPeriod) {
			maxPeriod = period
		}

		switch metric {
		case MetricEarnings:
			byPeriod[period] = addIfValid(byPeriod[period], o.TotalEarnings)
		default:
			byPeriod[period] = byPeriod[period].Add(decimal.NewFromInt(1))
		}
	}

	for period := minPeriod; !period.After(maxPeriod); period = granularity.NextPeriod(period) {
		series = append(series, SeriesPoint{
			Period: granularity.Label(period),
			Value:  byPeriod[period], // zero value fills gaps
		})
	}
	return series
}
