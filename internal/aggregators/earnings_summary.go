package aggregators

import (
	"time"

	"payout-analytics/internal/models"
	"payout-analytics/internal/periods"

	"github.com/shopspring/decimal"
)

// avgDaysPerMonth is the fixed average Gregorian month length used to derive
// the per-month average from the data span. It is a documented constant, not
// recomputed per call.
var avgDaysPerMonth = decimal.RequireFromString("30.44")

var sevenDays = decimal.NewFromInt(7)

// WindowTotals holds the scalar totals for one named window.
type WindowTotals struct {
	Window            models.Window   `json:"window"`
	OrderCount        int64           `json:"orderCount"`
	TotalEarnings     decimal.Decimal `json:"totalEarnings"`
	AffiliateEarnings decimal.Decimal `json:"affiliateEarnings"`
	DesignerEarnings  decimal.Decimal `json:"designerEarnings"`
}

// AverageEarnings are derived from the all-time totals divided by the data
// span, not the calendar span since any epoch.
type AverageEarnings struct {
	PerDay   decimal.Decimal `json:"perDay"`
	PerWeek  decimal.Decimal `json:"perWeek"`
	PerMonth decimal.Decimal `json:"perMonth"`
}

// EarningsSummary is the totals/averages query result.
type EarningsSummary struct {
	Windows  []WindowTotals  `json:"windows"`
	Averages AverageEarnings `json:"averages"`
}

// SummarizeEarnings filters the record set once per named window and computes
// counts and exact-decimal sums, with missing earnings cells contributing
// zero. Averages come from the all-time totals over the inclusive day span of
// the data; a zero or empty span yields zero averages, never an error.
func SummarizeEarnings(rs *models.RecordSet, now time.Time) *EarningsSummary {
	summary := &EarningsSummary{
		Windows: make([]WindowTotals, 0, len(models.AllWindows())),
	}

	var allTime WindowTotals
	for _, window := range models.AllWindows() {
		totals := sumWindow(rs, now, window)
		if window == models.WindowAllTime {
			allTime = totals
		}
		summary.Windows = append(summary.Windows, totals)
	}

	summary.Averages = averagesOverSpan(rs, allTime.TotalEarnings)
	return summary
}

func sumWindow(rs *models.RecordSet, now time.Time, window models.Window) WindowTotals {
	totals := WindowTotals{Window: window}
	for _, o := range rs.OrdersSince(periods.Resolve(now, window)) {
		totals.OrderCount++
		totals.TotalEarnings = addIfValid(totals.TotalEarnings, o.TotalEarnings)
		totals.AffiliateEarnings = addIfValid(totals.AffiliateEarnings, o.AffiliateEarnings)
		totals.DesignerEarnings = addIfValid(totals.DesignerEarnings, o.DesignerEarnings)
	}
	return totals
}

func averagesOverSpan(rs *models.RecordSet, allTimeTotal decimal.Decimal) AverageEarnings {
	min, max, ok := rs.DateSpan()
	if !ok {
		return AverageEarnings{}
	}

	// Inclusive of both endpoints: a single-day record set spans 1 day.
	days := int64(max.Sub(min)/(24*time.Hour)) + 1
	if days <= 0 {
		return AverageEarnings{}
	}
	daysDec := decimal.NewFromInt(days)

	return AverageEarnings{
		PerDay:   allTimeTotal.Div(daysDec).Round(2),
		PerWeek:  allTimeTotal.Div(daysDec.Div(sevenDays)).Round(2),
		PerMonth: allTimeTotal.Div(daysDec.Div(avgDaysPerMonth)).Round(2),
	}
}

func addIfValid(sum decimal.Decimal, v decimal.NullDecimal) decimal.Decimal {
	if !v.Valid {
		return sum
	}
	return sum.Add(v.Decimal)
}
