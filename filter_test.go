package sukuk

import (
	"testing"
	"time"

	"github.com/etnz/sukuk/date"
)

func TestFilterApply(t *testing.T) {
	jan := date.New(2024, time.January, 15)
	jun := date.New(2024, time.June, 1)
	investments := []Investment{
		with(newInvestment("a", 1000, 100), startingOn(jan)),
		with(newInvestment("b", 1000, 100), startingOn(jun), onPlatform("p2")),
		with(newInvestment("c", 1000, 100), startingOn(date.Date{})),
	}
	cash := []CashTransaction{
		newCash(Deposit, 10, "p1"),
		newCash(Deposit, 20, "p2"),
		newCash(Deposit, 30, ""),
	}
	cashflows := []Cashflow{
		newCashflow("a", 5, date.New(2030, time.January, 1), CashflowUpcoming, Profit), // far outside any range
		newCashflow("b", 5, jun, CashflowReceived, Profit),
		newCashflow("c", 5, jun, CashflowReceived, Profit),
	}
	h1 := date.Between(date.New(2024, time.January, 1), date.New(2024, time.June, 1))
	q1 := date.NewRange(jan, date.Quarterly)

	testCases := []struct {
		name          string
		filter        Filter
		wantInv       []string
		wantCash      int
		wantCashflows int
	}{
		{"no filter", Filter{}, []string{"a", "b", "c"}, 3, 3},
		{"platform", Filter{PlatformID: "p2"}, []string{"b"}, 1, 1},
		{"inclusive range", Filter{Range: &h1}, []string{"a", "b"}, 3, 2},
		{"range", Filter{Range: &q1}, []string{"a"}, 3, 1},
		{"range and platform", Filter{PlatformID: "p1", Range: &q1}, []string{"a"}, 1, 1},
		{"unknown platform", Filter{PlatformID: "nope"}, nil, 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			invs, txs, cfs := tc.filter.Apply(investments, cash, cashflows)
			if len(invs) != len(tc.wantInv) {
				t.Fatalf("Apply() kept %d investments, want %v", len(invs), tc.wantInv)
			}
			for i, id := range tc.wantInv {
				if invs[i].ID != id {
					t.Errorf("Apply() investment %d = %q, want %q", i, invs[i].ID, id)
				}
			}
			if len(txs) != tc.wantCash {
				t.Errorf("Apply() kept %d cash transactions, want %d", len(txs), tc.wantCash)
			}
			if len(cfs) != tc.wantCashflows {
				t.Errorf("Apply() kept %d cashflows, want %d", len(cfs), tc.wantCashflows)
			}
		})
	}
}

func TestFilterApplyEmpty(t *testing.T) {
	invs, txs, cfs := Filter{PlatformID: "p1"}.Apply(nil, nil, nil)
	if len(invs) != 0 || len(txs) != 0 || len(cfs) != 0 {
		t.Errorf("Apply(nil) = %v, %v, %v; want empty", invs, txs, cfs)
	}
}
