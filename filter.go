package sukuk

import "github.com/etnz/sukuk/date"

// Filter narrows the working set of a dashboard. The zero Filter keeps everything.
type Filter struct {
	PlatformID string      // keep a single platform when set
	Range      *date.Range // keep investments started within the range when set
}

// Match reports whether inv belongs to the filtered set.
// Investments without start date never match an active date range.
func (f Filter) Match(inv Investment) bool {
	if f.PlatformID != "" && inv.PlatformID != f.PlatformID {
		return false
	}
	if f.Range != nil {
		start, ok := inv.Start()
		if !ok || !f.Range.Contains(start) {
			return false
		}
	}
	return true
}

// MatchCash reports whether tx belongs to the filtered set. Only the platform
// applies to cash: unassigned transactions are only visible without platform filter.
func (f Filter) MatchCash(tx CashTransaction) bool {
	return f.PlatformID == "" || tx.PlatformID == f.PlatformID
}

// Apply narrows the three collections. Cashflows follow their investment:
// a cashflow is kept iff its investment is kept, whatever its own dates.
// Inputs are never modified.
func (f Filter) Apply(investments []Investment, cash []CashTransaction, cashflows []Cashflow) ([]Investment, []CashTransaction, []Cashflow) {
	invs := make([]Investment, 0, len(investments))
	kept := make(map[string]bool, len(investments))
	for _, inv := range investments {
		if f.Match(inv) {
			invs = append(invs, inv)
			kept[inv.ID] = true
		}
	}

	txs := make([]CashTransaction, 0, len(cash))
	for _, tx := range cash {
		if f.MatchCash(tx) {
			txs = append(txs, tx)
		}
	}

	cfs := make([]Cashflow, 0, len(cashflows))
	for _, c := range cashflows {
		if kept[c.InvestmentID] {
			cfs = append(cfs, c)
		}
	}
	return invs, txs, cfs
}
