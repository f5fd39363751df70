package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrders() []*Order {
	return []*Order{
		{OrderDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Product: "Mug"},
		{OrderDate: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), Product: "Shirt"},
		{OrderDate: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), Product: "Poster"},
	}
}

func TestRecordSet_HasColumn(t *testing.T) {
	t.Parallel()

	rs := &RecordSet{Columns: []string{ColumnOrderDate, ColumnProduct, "Campaign"}}

	assert.True(t, rs.HasColumn(ColumnOrderDate))
	assert.True(t, rs.HasColumn("Campaign"))
	assert.False(t, rs.HasColumn(ColumnTitle))
}

func TestRecordSet_OrdersSince_NilBoundReturnsAll(t *testing.T) {
	t.Parallel()

	rs := &RecordSet{Orders: testOrders()}

	got := rs.OrdersSince(nil)

	require.Len(t, got, 3)
	assert.Equal(t, rs.Orders, got)

	// fresh slice, appending must not touch the record set
	got = append(got, &Order{})
	assert.Len(t, rs.Orders, 3)
}

func TestRecordSet_OrdersSince_BoundIsInclusive(t *testing.T) {
	t.Parallel()

	rs := &RecordSet{Orders: testOrders()}
	bound := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

	got := rs.OrdersSince(&bound)

	require.Len(t, got, 2)
	assert.Equal(t, "Shirt", got[0].Product)
	assert.Equal(t, "Poster", got[1].Product)
}

func TestRecordSet_OrdersSince_BoundAfterAll(t *testing.T) {
	t.Parallel()

	rs := &RecordSet{Orders: testOrders()}
	bound := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, rs.OrdersSince(&bound))
}

func TestRecordSet_DateSpan(t *testing.T) {
	t.Parallel()

	rs := &RecordSet{Orders: []*Order{
		{OrderDate: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
		{OrderDate: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		{OrderDate: time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)},
	}}

	min, max, ok := rs.DateSpan()

	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), min)
	assert.Equal(t, time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC), max)
}

func TestRecordSet_DateSpan_Empty(t *testing.T) {
	t.Parallel()

	rs := &RecordSet{}

	_, _, ok := rs.DateSpan()
	assert.False(t, ok)
}
