package models

import "time"

// RecordSet is the normalized, ordered result of one report upload. It is
// read-only once stored: queries derive filtered views from it and never
// mutate the canonical copy.
type RecordSet struct {
	// Columns is the source header in original order, canonical and
	// passthrough columns alike.
	Columns []string `json:"columns"`
	Orders  []*Order `json:"orders"`
}

// HasColumn reports whether the source export carried the given column.
func (rs *RecordSet) HasColumn(name string) bool {
	for _, c := range rs.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// OrdersSince returns the orders with OrderDate >= bound, preserving order.
// A nil bound means no filtering (the alltime window). The returned slice is
// freshly allocated; the record set itself is never modified.
func (rs *RecordSet) OrdersSince(bound *time.Time) []*Order {
	if bound == nil {
		out := make([]*Order, len(rs.Orders))
		copy(out, rs.Orders)
		return out
	}
	out := make([]*Order, 0, len(rs.Orders))
	for _, o := range rs.Orders {
		if !o.OrderDate.Before(*bound) {
			out = append(out, o)
		}
	}
	return out
}

// DateSpan returns the earliest and latest order dates. ok is false for an
// empty record set.
func (rs *RecordSet) DateSpan() (min, max time.Time, ok bool) {
	for i, o := range rs.Orders {
		if i == 0 || o.OrderDate.Before(min) {
			min = o.OrderDate
		}
		if i == 0 || o.OrderDate.After(max) {
			max = o.OrderDate
		}
	}
	return min, max, len(rs.Orders) > 0
}
