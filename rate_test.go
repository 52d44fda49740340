package sukuk

import (
	"testing"
	"time"

	"github.com/etnz/sukuk/date"
)

func TestCalculateAPR(t *testing.T) {
	testCases := []struct {
		name   string
		amount Money
		profit Money
		months int
		want   Percent
	}{
		{"one year", M(100000, ""), M(12000, ""), 12, 12},
		{"six months", M(100000, ""), M(6000, ""), 6, 12},
		{"two years", M(100000, ""), M(30000, ""), 24, 15},
		{"zero amount", M(0, ""), M(12000, ""), 12, 0},
		{"zero duration", M(100000, ""), M(12000, ""), 0, 0},
		{"loss", M(100000, ""), M(-5000, ""), 12, -5},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CalculateAPR(tc.amount, tc.profit, tc.months); !got.Equal(tc.want) {
				t.Errorf("CalculateAPR(%v, %v, %d) = %v, want %v", tc.amount, tc.profit, tc.months, got, tc.want)
			}
		})
	}
}

func TestInvestmentAPR(t *testing.T) {
	inv := Investment{
		FaceValue:           ParseMoney("100000", ""),
		ExpectedIRR:         12,
		StartDate:           date.New(2024, time.January, 1),
		EndDate:             date.New(2025, time.January, 1),
		TotalExpectedProfit: ParseMoney("12000", ""),
		Status:              StatusActive,
	}
	if got, ok := inv.APR(); !ok || !got.Equal(12) {
		t.Errorf("APR() = %v, %v; want 12, true", got, ok)
	}
}

func TestActiveAPR(t *testing.T) {
	testCases := []struct {
		name        string
		investments []Investment
		want        Percent
	}{
		{
			name: "value weighted",
			investments: []Investment{
				newInvestment("a", 100000, 10000), // 10%
				newInvestment("b", 200000, 40000), // 20%
			},
			want: 16.666667,
		},
		{
			name: "troubled investments are open",
			investments: []Investment{
				with(newInvestment("a", 100000, 10000), withStatus(StatusLate)),
				with(newInvestment("b", 100000, 20000), withStatus(StatusDefaulted)),
			},
			want: 15,
		},
		{
			name: "closed investments are ignored",
			investments: []Investment{
				newInvestment("a", 100000, 10000),
				with(newInvestment("b", 900000, 900000), withStatus(StatusCompleted)),
				with(newInvestment("c", 900000, 900000), withStatus(StatusPending)),
			},
			want: 10,
		},
		{
			name: "missing dates contribute nothing",
			investments: []Investment{
				newInvestment("a", 100000, 10000),
				with(newInvestment("b", 900000, 900000), startingOn(date.Date{})),
			},
			want: 10,
		},
		{
			name:        "empty",
			investments: nil,
			want:        0,
		},
		{
			name: "no active",
			investments: []Investment{
				with(newInvestment("b", 900000, 900000), withStatus(StatusCompleted)),
			},
			want: 0,
		},
		{
			name: "zero face value",
			investments: []Investment{
				newInvestment("a", 0, 0),
			},
			want: 0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ActiveAPR(tc.investments); !got.Equal(tc.want) {
				t.Errorf("ActiveAPR() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestWeightedAPR(t *testing.T) {
	investments := []Investment{
		newInvestment("a", 100000, 10000),                                      // 10%
		with(newInvestment("b", 300000, 90000), withStatus(StatusCompleted)), // 30%
	}
	// (100000*10 + 300000*30) / 400000
	if got := WeightedAPR(investments); !got.Equal(25) {
		t.Errorf("WeightedAPR() = %v, want 25", got)
	}
	if got := ActiveAPR(investments); !got.Equal(10) {
		t.Errorf("ActiveAPR() = %v, want 10", got)
	}
	if got := WeightedAPR(nil); got != 0 {
		t.Errorf("WeightedAPR(nil) = %v, want 0", got)
	}
}

func TestPortfolioROI(t *testing.T) {
	investments := []Investment{
		newInvestment("a", 100000, 12000),
		with(newInvestment("b", 100000, 12000), withStatus(StatusCompleted)),
	}
	cashflows := []Cashflow{
		newCashflow("a", 3000, date.New(2024, time.April, 1), CashflowReceived, Profit),
		newCashflow("b", 5000, date.New(2024, time.April, 1), CashflowReceived, Profit),
		newCashflow("b", 100000, date.New(2025, time.January, 1), CashflowReceived, Principal), // not a profit
		newCashflow("a", 3000, date.New(2024, time.July, 1), CashflowExpected, Profit),        // not received
	}
	if got := PortfolioROI(investments, cashflows); !got.Equal(4) {
		t.Errorf("PortfolioROI() = %v, want 4", got)
	}
	if got := PortfolioROI(nil, cashflows); got != 0 {
		t.Errorf("PortfolioROI(nil) = %v, want 0", got)
	}
}

func TestWeightedAPRPrecision(t *testing.T) {
	testCases := []struct {
		name        string
		investments []Investment
		want        Percent
	}{
		{
			name: "tiny position beside a huge one",
			investments: []Investment{
				newInvestment("big", 1e12, 1e11),
				newInvestment("tiny", 0.01, 0.01),
			},
			want: 10,
		},
		{
			name: "equal odd face values",
			investments: []Investment{
				newInvestment("a", 123456789.123, 14814814.69476),
				newInvestment("b", 123456789.123, 19753086.25968),
				newInvestment("c", 123456789.123, 24691357.8246),
			},
			want: 16,
		},
	}
	for _, tc := range testCases {
		if got := WeightedAPR(tc.investments); !got.Equal(tc.want) {
			t.Errorf("%s: WeightedAPR() = %v, want %v", tc.name, got, tc.want)
		}
	}
}
