package renderer

import (
	"fmt"

	"github.com/etnz/sukuk"
	"github.com/etnz/sukuk/date"
)

// Dashboard is the view of a DashboardMetrics.
type Dashboard struct {
	On    date.Date
	Scope string // which platforms and dates the figures cover
	sukuk.DashboardMetrics
}

// NewDashboard builds the dashboard view of m computed on 'on' with the given filter.
func NewDashboard(m sukuk.DashboardMetrics, on date.Date, f sukuk.Filter, platforms []sukuk.Platform) *Dashboard {
	return &Dashboard{On: on, Scope: Scope(f, platforms), DashboardMetrics: m}
}

// Duration formats the average duration.
func (d *Dashboard) Duration() string {
	return fmt.Sprintf("%.1f months", d.AverageDuration)
}

// Scope describes a filter in plain words.
func Scope(f sukuk.Filter, platforms []sukuk.Platform) string {
	scope := "All platforms"
	if f.PlatformID != "" {
		scope = sukuk.UnknownPlatform
		for _, p := range platforms {
			if p.ID == f.PlatformID {
				scope = p.Name
			}
		}
	}
	if f.Range != nil {
		scope += fmt.Sprintf(", investments started from %s to %s", f.Range.From, f.Range.To)
	}
	return scope
}

// Status is the view of troubled investments and upcoming payments.
type Status struct {
	On       date.Date
	Scope    string
	Days     int // size of the upcoming window
	Troubled []sukuk.StatusLine
	Upcoming []sukuk.Cashflow
	Names    map[string]string // investment names by id
}

// Name returns the display name of investment id.
func (s *Status) Name(id string) string {
	if n, ok := s.Names[id]; ok && n != "" {
		return n
	}
	return id
}

// Cash is the view of cash balances.
type Cash struct {
	Scope    string
	Total    sukuk.Money
	Balances []sukuk.CashBalance
}
