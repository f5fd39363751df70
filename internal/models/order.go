package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Canonical column names of the payout export. Column-to-field mapping is by
// exact header name; anything else in the header is carried as a passthrough
// column.
const (
	ColumnOrderDate         = "Order Date"
	ColumnProduct           = "Product"
	ColumnTitle             = "Title"
	ColumnDesignerEarnings  = "Designer Earnings"
	ColumnAffiliateEarnings = "Affiliate Earnings"
	ColumnTotalEarnings     = "Total Earnings"
)

// Order is one normalized row of a payout report.
//
// OrderDate is always UTC: no order enters a record set with a naive or
// mixed-zone timestamp. The earnings fields use NullDecimal so that a cell
// that failed numeric coercion stays distinguishable from a true zero.
type Order struct {
	OrderDate         time.Time           `json:"orderDate"`
	Product           string              `json:"product"`
	Title             string              `json:"title"`
	DesignerEarnings  decimal.NullDecimal `json:"designerEarnings"`
	AffiliateEarnings decimal.NullDecimal `json:"affiliateEarnings"`
	TotalEarnings     decimal.NullDecimal `json:"totalEarnings"`

	// Passthrough holds source columns that are not modeled above, keyed by
	// header name, preserved verbatim for full-row projections.
	Passthrough map[string]string `json:"passthrough,omitempty"`
}
