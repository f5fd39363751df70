package aggregators

import (
	"testing"
	"time"

	"payout-analytics/internal/models"

	"github.com/stretchr/testify/assert"
)

func orderWith(product, title string, date time.Time) *models.Order {
	return &models.Order{OrderDate: date, Product: product, Title: title}
}

func TestTopCategories_CountsAndOrder(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		orderWith("Mug", "Space Cat", day),
		orderWith("Shirt", "Space Cat", day),
		orderWith("Mug", "Retro Wave", day),
	}

	got := TopCategories(orders, CategoryProduct, 10)

	assert.Equal(t, []CategoryCount{
		{Category: "Mug", Count: 2},
		{Category: "Shirt", Count: 1},
	}, got)
}

func TestTopCategories_ByTitle(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		orderWith("Mug", "Space Cat", day),
		orderWith("Shirt", "Space Cat", day),
		orderWith("Mug", "Retro Wave", day),
	}

	got := TopCategories(orders, CategoryTitle, 10)

	assert.Equal(t, []CategoryCount{
		{Category: "Space Cat", Count: 2},
		{Category: "Retro Wave", Count: 1},
	}, got)
}

func TestTopCategories_TieBreakIsDeterministic(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		orderWith("Zebra Print", "", day),
		orderWith("Apron", "", day),
		orderWith("Mug", "", day),
	}

	// Equal counts sort by category ascending.
	got := TopCategories(orders, CategoryProduct, 10)

	assert.Equal(t, []CategoryCount{
		{Category: "Apron", Count: 1},
		{Category: "Mug", Count: 1},
		{Category: "Zebra Print", Count: 1},
	}, got)
}

func TestTopCategories_CapsAtN(t *testing.T) {
	t.Parallel()

	day := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	orders := []*models.Order{
		orderWith("Mug", "", day),
		orderWith("Mug", "", day),
		orderWith("Mug", "", day),
		orderWith("Shirt", "", day),
		orderWith("Shirt", "", day),
		orderWith("Sticker", "", day),
	}

	got := TopCategories(orders, CategoryProduct, 2)

	assert.Equal(t, []CategoryCount{
		{Category: "Mug", Count: 3},
		{Category: "Shirt", Count: 2},
	}, got)
}

func TestTopCategories_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Empty(t, TopCategories(nil, CategoryProduct, 10))
}
