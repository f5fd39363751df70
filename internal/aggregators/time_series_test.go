package aggregators

import (
	"testing"
	"time"

	"payout-analytics/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSeries_MonthlyGapFilled(t *testing.T) {
	t.Parallel()

	orders := []*models.Order{
		earningOrder(time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC), "1.50"),
		earningOrder(time.Date(2024, 3, 2, 18, 0, 0, 0, time.UTC), "2.50"),
	}

	got := BuildSeries(orders, models.GranularityMonth, MetricEarnings)

	// February had no orders but must appear with value 0.
	require.Len(t, got, 3)
	assert.Equal(t, "2024-01", got[0].Period)
	assert.True(t, got[0].Value.Equal(decimal.RequireFromString("1.50")))
	assert.Equal(t, "2024-02", got[1].Period)
	assert.True(t, got[1].Value.IsZero())
	assert.Equal(t, "2024-03", got[2].Period)
	assert.True(t, got[2].Value.Equal(decimal.RequireFromString("2.50")))
}

func TestBuildSeries_DailySalesCountsSumToRecordCount(t *testing.T) {
	t.Parallel()

	orders := []*models.Order{
		earningOrder(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), "1.00"),
		earningOrder(time.Date(2024, 3, 1, 17, 0, 0, 0, time.UTC), "1.00"),
		earningOrder(time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), "1.00"),
	}

	got := BuildSeries(orders, models.GranularityDay, MetricSales)

	// Every day between min and max appears, gaps valued 0.
	require.Len(t, got, 5)
	assert.Equal(t, "2024-03-01", got[0].Period)
	assert.Equal(t, "2024-03-02", got[1].Period)
	assert.Equal(t, "2024-03-03", got[2].Period)
	assert.Equal(t, "2024-03-04", got[3].Period)
	assert.Equal(t, "2024-03-05", got[4].Period)

	total := decimal.Zero
	for _, p := range got {
		total = total.Add(p.Value)
	}
	assert.True(t, total.Equal(decimal.NewFromInt(int64(len(orders)))))
}

func TestBuildSeries_WeeklyLabelsAcrossYearBoundary(t *testing.T) {
	t.Parallel()

	orders := []*models.Order{
		// Monday 2024-12-30 belongs to ISO week 2025-W01.
		earningOrder(time.Date(2024, 12, 30, 12, 0, 0, 0, time.UTC), "1.00"),
		earningOrder(time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC), "1.00"),
	}

	got := BuildSeries(orders, models.GranularityWeek, MetricSales)

	require.Len(t, got, 2)
	assert.Equal(t, "2025-W01", got[0].Period)
	assert.Equal(t, "2025-W02", got[1].Period)
}

func TestBuildSeries_EmptyInputYieldsEmptySeries(t *testing.T) {
	t.Parallel()

	got := BuildSeries(nil, models.GranularityDay, MetricSales)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBuildSeries_SinglePeriod(t *testing.T) {
	t.Parallel()

	orders := []*models.Order{
		earningOrder(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), "1.50"),
		earningOrder(time.Date(2024, 3, 1, 21, 0, 0, 0, time.UTC), "2.00"),
	}

	got := BuildSeries(orders, models.GranularityDay, MetricEarnings)

	require.Len(t, got, 1)
	assert.Equal(t, "2024-03-01", got[0].Period)
	assert.True(t, got[0].Value.Equal(decimal.RequireFromString("3.50")))
}

func TestBuildSeries_MissingEarningsCellsCountZero(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		{OrderDate: day}, // earnings missing entirely
		earningOrder(day, "2.00"),
	}

	got := BuildSeries(orders, models.GranularityDay, MetricEarnings)

	require.Len(t, got, 1)
	assert.True(t, got[0].Value.Equal(decimal.RequireFromString("2.00")))
}
