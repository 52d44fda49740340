package sukuk

import "github.com/etnz/sukuk/date"

// Book bundles the records of one investor, as handed over by the storage
// layer. The engine functions only read it.
type Book struct {
	Currency    string
	Platforms   []Platform
	Investments []Investment
	Cashflows   []Cashflow
	Cash        []CashTransaction
}

// Metrics computes the dashboard of the book. The book currency is used when
// opts has none.
func (b *Book) Metrics(opts Options) DashboardMetrics {
	if opts.Currency == "" {
		opts.Currency = b.Currency
	}
	return CalculateDashboardMetrics(b.Investments, b.Cash, b.Platforms, b.Cashflows, opts)
}

// Troubled lists the late and defaulted investments of the filtered book.
func (b *Book) Troubled(f Filter, now date.Date) []StatusLine {
	invs, _, cfs := f.Apply(b.Investments, nil, b.Cashflows)
	return Troubled(invs, cfs, now)
}

// Upcoming lists the payments of the filtered book due within 'days' of now.
func (b *Book) Upcoming(f Filter, now date.Date, days int) []Cashflow {
	_, _, cfs := f.Apply(b.Investments, nil, b.Cashflows)
	return UpcomingCashflows(cfs, now, days)
}

// Platform returns the platform with the given id.
func (b *Book) Platform(id string) (Platform, bool) {
	for _, p := range b.Platforms {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}
