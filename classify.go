package sukuk

import (
	"cmp"
	"slices"

	"github.com/etnz/sukuk/date"
)

// DefaultThreshold is the number of days past due after which an unreceived
// payment puts an active investment in default.
const DefaultThreshold = 60

// IsLate reports whether inv has an unreceived payment strictly past due on
// 'now'. Completed and pending investments are never late.
// cashflows may contain other investments' payments, they are ignored.
func IsLate(inv Investment, cashflows []Cashflow, now date.Date) bool {
	if inv.Status == StatusCompleted || inv.Status == StatusPending {
		return false
	}
	for _, c := range cashflows {
		if c.InvestmentID != inv.ID {
			continue
		}
		if c.IsOverdue(now) {
			return true
		}
	}
	return false
}

// IsDefaulted reports whether an active investment has an unreceived payment
// more than DefaultThreshold days past due on 'now'. Investments whose stored
// status is not active are never reported.
func IsDefaulted(inv Investment, cashflows []Cashflow, now date.Date) bool {
	if inv.Status != StatusActive {
		return false
	}
	for _, c := range cashflows {
		if c.InvestmentID != inv.ID {
			continue
		}
		if c.DaysOverdue(now) > DefaultThreshold {
			return true
		}
	}
	return false
}

// EffectiveStatus refines the stored status with the payment history:
// defaulted wins over late, and completed or pending are kept as is.
func EffectiveStatus(inv Investment, cashflows []Cashflow, now date.Date) Status {
	switch {
	case inv.Status == StatusCompleted || inv.Status == StatusPending:
		return inv.Status
	case inv.Status == StatusDefaulted || IsDefaulted(inv, cashflows, now):
		return StatusDefaulted
	case inv.Status == StatusLate || IsLate(inv, cashflows, now):
		return StatusLate
	default:
		return inv.Status
	}
}

// StatusDistribution counts investments per status bucket.
//
// Active is the count of stored active statuses, it is not reduced by the
// investments that turned late or defaulted: the four buckets may add up to
// more than the number of investments.
type StatusDistribution struct {
	Active    int `json:"active"`
	Completed int `json:"completed"`
	Late      int `json:"late"`
	Defaulted int `json:"defaulted"`
}

// NewStatusDistribution classifies investments on 'now'.
func NewStatusDistribution(investments []Investment, cashflows []Cashflow, now date.Date) StatusDistribution {
	byInvestment := make(map[string][]Cashflow)
	for _, c := range cashflows {
		byInvestment[c.InvestmentID] = append(byInvestment[c.InvestmentID], c)
	}

	var d StatusDistribution
	for _, inv := range investments {
		switch inv.Status {
		case StatusActive:
			d.Active++
		case StatusCompleted:
			d.Completed++
		}
		switch EffectiveStatus(inv, byInvestment[inv.ID], now) {
		case StatusDefaulted:
			d.Defaulted++
		case StatusLate:
			d.Late++
		}
	}
	return d
}

// StatusLine is an investment with its refined status.
type StatusLine struct {
	Investment  Investment `json:"investment"`
	Status      Status     `json:"status"`
	DaysOverdue int        `json:"daysOverdue"`
	Overdue     Money      `json:"overdue"`
}

// Troubled lists the investments whose effective status is late or defaulted,
// most overdue first.
func Troubled(investments []Investment, cashflows []Cashflow, now date.Date) []StatusLine {
	res := make([]StatusLine, 0)
	for _, inv := range investments {
		own := cashflowsOf(inv.ID, cashflows)
		st := EffectiveStatus(inv, own, now)
		if st != StatusLate && st != StatusDefaulted {
			continue
		}
		line := StatusLine{Investment: inv, Status: st, Overdue: OverdueAmount(own, now)}
		for _, c := range own {
			line.DaysOverdue = max(line.DaysOverdue, c.DaysOverdue(now))
		}
		res = append(res, line)
	}
	slices.SortStableFunc(res, func(a, b StatusLine) int { return cmp.Compare(b.DaysOverdue, a.DaysOverdue) })
	return res
}
