package sukuk

import "github.com/etnz/sukuk/date"

// Options scopes a dashboard computation.
type Options struct {
	Filter
	// Now is the reference day for late and default classification. Nothing
	// is overdue when it is left to the zero Date.
	Now date.Date
	// Currency is given to amounts that carry none.
	Currency string
}

// DashboardMetrics holds every figure a dashboard displays. It is a value
// computed from scratch on each call.
type DashboardMetrics struct {
	Currency string `json:"currency,omitempty"`

	PortfolioValue      Money `json:"portfolioValue"`      // active face value + cash
	TotalCash           Money `json:"totalCash"`           // net cash balance
	ActiveValue         Money `json:"activeValue"`         // face value of active investments
	TotalInvested       Money `json:"totalInvested"`       // face value of all investments
	TotalExpectedProfit Money `json:"totalExpectedProfit"` // as recorded on investments
	ReceivedProfit      Money `json:"receivedProfit"`
	ReceivedPrincipal   Money `json:"receivedPrincipal"`
	PendingProfit       Money `json:"pendingProfit"`
	OverdueAmount       Money `json:"overdueAmount"`

	ActiveAPR    Percent `json:"activeApr"`
	WeightedAPR  Percent `json:"weightedApr"`
	PortfolioROI Percent `json:"portfolioRoi"`

	AverageDuration   float64 `json:"averageDuration"` // months
	AverageInvestment Money   `json:"averageInvestment"`

	TotalInvestments      int `json:"totalInvestments"`
	ActiveInvestments     int `json:"activeInvestments"`
	CompletedInvestments  int `json:"completedInvestments"`
	PendingInvestments    int `json:"pendingInvestments"`
	ReinvestedInvestments int `json:"reinvestedInvestments"`

	StatusDistribution StatusDistribution `json:"statusDistribution"`

	CashByPlatform             []CashBalance   `json:"cashByPlatform"`
	PlatformDistribution       []PlatformShare `json:"platformDistribution"`
	ActivePlatformDistribution []PlatformShare `json:"activePlatformDistribution"`
	PlatformCountDistribution  []PlatformShare `json:"platformCountDistribution"`
}

// CalculateDashboardMetrics filters the collections with opts and derives all
// the dashboard figures. Inputs are never modified. It does not fail: missing
// data degrades to zero or empty results.
func CalculateDashboardMetrics(investments []Investment, cash []CashTransaction, platforms []Platform, cashflows []Cashflow, opts Options) DashboardMetrics {
	invs, txs, cfs := opts.Filter.Apply(investments, cash, cashflows)

	totalCash := TotalCash(txs)
	m := DashboardMetrics{
		Currency:            opts.Currency,
		PortfolioValue:      PortfolioValue(invs, totalCash),
		TotalCash:           totalCash,
		ActiveValue:         ActiveValue(invs),
		TotalInvested:       TotalInvested(invs),
		TotalExpectedProfit: TotalExpectedProfit(invs),
		ReceivedProfit:      ReceivedProfit(cfs),
		ReceivedPrincipal:   ReceivedPrincipal(cfs),
		PendingProfit:       PendingProfit(cfs),
		OverdueAmount:       OverdueAmount(cfs, opts.Now),

		ActiveAPR:    ActiveAPR(invs),
		WeightedAPR:  WeightedAPR(invs),
		PortfolioROI: PortfolioROI(invs, cfs),

		AverageDuration:   AverageDuration(invs),
		AverageInvestment: AverageInvestment(invs),

		TotalInvestments:   len(invs),
		StatusDistribution: NewStatusDistribution(invs, cfs, opts.Now),

		CashByPlatform:             CashBalances(CashByPlatform(txs, opts.PlatformID), platforms),
		PlatformDistribution:       PlatformDistribution(invs, platforms),
		ActivePlatformDistribution: ActivePlatformDistribution(invs, platforms),
		PlatformCountDistribution:  PlatformCountDistribution(invs, platforms),
	}
	for _, inv := range invs {
		switch inv.Status {
		case StatusActive:
			m.ActiveInvestments++
		case StatusCompleted:
			m.CompletedInvestments++
		case StatusPending:
			m.PendingInvestments++
		}
		if inv.Reinvested {
			m.ReinvestedInvestments++
		}
	}
	if opts.Currency != "" {
		m.inCurrency(opts.Currency)
	}
	return m
}

// inCurrency gives currency to every amount that has none.
func (m *DashboardMetrics) inCurrency(currency string) {
	for _, p := range []*Money{
		&m.PortfolioValue, &m.TotalCash, &m.ActiveValue, &m.TotalInvested,
		&m.TotalExpectedProfit, &m.ReceivedProfit, &m.ReceivedPrincipal,
		&m.PendingProfit, &m.OverdueAmount, &m.AverageInvestment,
	} {
		*p = p.In(currency)
	}
	for i := range m.CashByPlatform {
		m.CashByPlatform[i].Balance = m.CashByPlatform[i].Balance.In(currency)
	}
	for _, table := range [][]PlatformShare{m.PlatformDistribution, m.ActivePlatformDistribution, m.PlatformCountDistribution} {
		for i := range table {
			table[i].Value = table[i].Value.In(currency)
		}
	}
}
