// Package offer holds the static interest-rate table.
package offer

// Offer maps a tenure to its annual interest rate.
type Offer struct {
	TenureMonths int
	InterestRate float64
}

// Table is an immutable tenure-to-rate lookup loaded once at startup.
type Table struct {
	offers   []Offer
	fallback Offer
}

// DefaultTenureMonths is the tenure whose offer backs lookups that have no
// exact entry.
const DefaultTenureMonths = 12

// NewTable returns the standard offer grid.
func NewTable() *Table {
	return NewTableWith([]Offer{
		{TenureMonths: 6, InterestRate: 10.5},
		{TenureMonths: 12, InterestRate: 11.0},
		{TenureMonths: 18, InterestRate: 11.5},
		{TenureMonths: 24, InterestRate: 12.0},
		{TenureMonths: 36, InterestRate: 12.5},
	})
}

// NewTableWith builds a table from the given offers. The entry matching
// DefaultTenureMonths becomes the fallback; when absent the first entry does.
func NewTableWith(offers []Offer) *Table {
	t := &Table{offers: offers}
	if len(offers) > 0 {
		t.fallback = offers[0]
	}
	for _, o := range offers {
		if o.TenureMonths == DefaultTenureMonths {
			t.fallback = o
			break
		}
	}
	return t
}

// ForTenure returns the offer with the exact tenure, or the fallback entry
// when no exact match exists.
func (t *Table) ForTenure(months int) Offer {
	for _, o := range t.offers {
		if o.TenureMonths == months {
			return o
		}
	}
	return t.fallback
}
