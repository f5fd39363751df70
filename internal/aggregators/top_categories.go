// Package aggregators holds the pure aggregation computations: top-N category
// counts, windowed earnings totals, and gap-filled time series. Nothing here
// touches stores or mutates its input.
package aggregators

import (
	"sort"

	"payout-analytics/internal/models"
)

// CategoryField selects the order field used as the grouping category.
type CategoryField string

const (
	CategoryProduct CategoryField = "product"
	CategoryTitle   CategoryField = "title"
)

// Column returns the source column this category is derived from.
func (f CategoryField) Column() string {
	if f == CategoryTitle {
		return models.ColumnTitle
	}
	return models.ColumnProduct
}

func (f CategoryField) valueOf(o *models.Order) string {
	if f == CategoryTitle {
		return o.Title
	}
	return o.Product
}

// CategoryCount is one entry of a top-N result.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// TopCategories groups orders by the given field, counts members, and returns
// at most n entries sorted by count descending. Ties break by category value
// ascending so output is reproducible. Categories with no orders in the input
// are omitted, never zero-filled.
func TopCategories(orders []*models.Order, field CategoryField, n int) []CategoryCount {
	counts := make(map[string]int64)
	for _, o := range orders {
		counts[field.valueOf(o)]++
	}

	entries := make([]CategoryCount, 0, len(counts))
	for category, count := range counts {
		entries = append(entries, CategoryCount{Category: category, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Category < entries[j].Category
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
