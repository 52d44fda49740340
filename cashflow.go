package sukuk

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/sukuk/date"
)

// CashflowStatus tells whether a scheduled payment was received.
type CashflowStatus string

const (
	CashflowReceived CashflowStatus = "received"
	CashflowExpected CashflowStatus = "expected"
	CashflowUpcoming CashflowStatus = "upcoming"
)

// ParseCashflowStatus parses a cashflow status, case insensitively.
func ParseCashflowStatus(s string) (CashflowStatus, error) {
	switch st := CashflowStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case CashflowReceived, CashflowExpected, CashflowUpcoming:
		return st, nil
	default:
		return "", fmt.Errorf("unknown cashflow status %q", s)
	}
}

func (s *CashflowStatus) UnmarshalJSON(b []byte) (err error) {
	*s, err = decodeEnum(b, ParseCashflowStatus)
	return err
}

// CashflowKind separates principal repayments from profit payments.
type CashflowKind string

const (
	Principal CashflowKind = "principal"
	Profit    CashflowKind = "profit"
)

// ParseCashflowKind parses a cashflow type, case insensitively.
func ParseCashflowKind(s string) (CashflowKind, error) {
	switch k := CashflowKind(strings.ToLower(strings.TrimSpace(s))); k {
	case Principal, Profit:
		return k, nil
	default:
		return "", fmt.Errorf("unknown cashflow type %q", s)
	}
}

func (k *CashflowKind) UnmarshalJSON(b []byte) (err error) {
	*k, err = decodeEnum(b, ParseCashflowKind)
	return err
}

// Cashflow is a scheduled payment from an investment back to the investor.
type Cashflow struct {
	ID           string         `json:"id"`
	InvestmentID string         `json:"investmentId"`
	Amount       Money          `json:"amount"`
	DueDate      date.Date      `json:"dueDate"`
	ReceivedDate date.Date      `json:"receivedDate"`
	Status       CashflowStatus `json:"status"`
	Kind         CashflowKind   `json:"type"`
}

// IsReceived reports whether the payment has been received.
func (c Cashflow) IsReceived() bool { return c.Status == CashflowReceived }

// Due returns the due date, ok is false when it is missing.
func (c Cashflow) Due() (date.Date, bool) { return c.DueDate, !c.DueDate.IsZero() }

// Received returns the received date, ok is false when it is missing.
func (c Cashflow) Received() (date.Date, bool) { return c.ReceivedDate, !c.ReceivedDate.IsZero() }

// DaysOverdue returns how many days past due an unreceived payment is on 'now'.
// It is 0 for received payments, payments without a due date, and payments
// not yet due.
func (c Cashflow) DaysOverdue(now date.Date) int {
	if c.IsReceived() {
		return 0
	}
	due, ok := c.Due()
	if !ok || !due.Before(now) {
		return 0
	}
	return now.DaysSince(due)
}

// IsOverdue reports whether the payment is unreceived and strictly past due on 'now'.
func (c Cashflow) IsOverdue(now date.Date) bool { return c.DaysOverdue(now) > 0 }

// cashflowsOf returns the cashflows belonging to investment id.
func cashflowsOf(id string, cashflows []Cashflow) []Cashflow {
	var res []Cashflow
	for _, c := range cashflows {
		if c.InvestmentID == id {
			res = append(res, c)
		}
	}
	return res
}

// ReceivedProfit sums profit payments already received.
func ReceivedProfit(cashflows []Cashflow) Money {
	return sumCashflows(cashflows, func(c Cashflow) bool { return c.IsReceived() && c.Kind == Profit })
}

// ReceivedPrincipal sums principal repayments already received.
func ReceivedPrincipal(cashflows []Cashflow) Money {
	return sumCashflows(cashflows, func(c Cashflow) bool { return c.IsReceived() && c.Kind == Principal })
}

// PendingProfit sums profit payments not received yet.
func PendingProfit(cashflows []Cashflow) Money {
	return sumCashflows(cashflows, func(c Cashflow) bool { return !c.IsReceived() && c.Kind == Profit })
}

// OverdueAmount sums every unreceived payment past due on 'now'.
func OverdueAmount(cashflows []Cashflow, now date.Date) Money {
	return sumCashflows(cashflows, func(c Cashflow) bool { return c.IsOverdue(now) })
}

func sumCashflows(cashflows []Cashflow, keep func(Cashflow) bool) Money {
	var total Money
	for _, c := range cashflows {
		if keep(c) {
			total = total.Add(c.Amount)
		}
	}
	return total
}

// UpcomingCashflows lists unreceived payments due between now and now+days
// (inclusive), earliest first.
func UpcomingCashflows(cashflows []Cashflow, now date.Date, days int) []Cashflow {
	window := date.Between(now, now.Add(days))
	res := make([]Cashflow, 0)
	for _, c := range cashflows {
		if c.IsReceived() {
			continue
		}
		due, ok := c.Due()
		if !ok || !window.Contains(due) {
			continue
		}
		res = append(res, c)
	}
	slices.SortStableFunc(res, func(a, b Cashflow) int {
		switch {
		case a.DueDate.Before(b.DueDate):
			return -1
		case a.DueDate.After(b.DueDate):
			return 1
		default:
			return cmp.Compare(a.InvestmentID, b.InvestmentID)
		}
	})
	return res
}
