package sukuk

import (
	"time"

	"github.com/etnz/sukuk/date"
)

// refDay is the reference "now" of the tests.
var refDay = date.New(2025, time.March, 1)

// newInvestment returns an active one year investment on platform p1
// yielding 'profit' on 'face'.
func newInvestment(id string, face, profit float64) Investment {
	return Investment{
		ID:                  id,
		PlatformID:          "p1",
		FaceValue:           M(face, ""),
		ExpectedIRR:         12,
		StartDate:           date.New(2024, time.January, 1),
		EndDate:             date.New(2025, time.January, 1),
		Status:              StatusActive,
		TotalExpectedProfit: M(profit, ""),
	}
}

// with returns a copy of inv changed by the option functions.
func with(inv Investment, opts ...func(*Investment)) Investment {
	for _, o := range opts {
		o(&inv)
	}
	return inv
}

func onPlatform(id string) func(*Investment) {
	return func(inv *Investment) { inv.PlatformID = id }
}

func withStatus(s Status) func(*Investment) {
	return func(inv *Investment) { inv.Status = s }
}

func startingOn(d date.Date) func(*Investment) {
	return func(inv *Investment) { inv.StartDate = d }
}

func newCashflow(investmentID string, amount float64, due date.Date, status CashflowStatus, kind CashflowKind) Cashflow {
	c := Cashflow{
		ID:           investmentID + "-" + due.String(),
		InvestmentID: investmentID,
		Amount:       M(amount, ""),
		DueDate:      due,
		Status:       status,
		Kind:         kind,
	}
	if status == CashflowReceived {
		c.ReceivedDate = due
	}
	return c
}

func newCash(kind CashKind, amount float64, platformID string) CashTransaction {
	return CashTransaction{Kind: kind, Amount: M(amount, ""), PlatformID: platformID}
}

var testPlatforms = []Platform{
	{ID: "p1", Name: "Alpha", Type: "crowdfunding"},
	{ID: "p2", Name: "Beta", Type: "bank"},
	{ID: "p3", Name: "Gamma"},
}
