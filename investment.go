package sukuk

import (
	"fmt"
	"strings"

	"github.com/etnz/sukuk/date"
)

// Status is the lifecycle status stored on an investment.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusLate      Status = "late"
	StatusDefaulted Status = "defaulted"
	StatusPending   Status = "pending"
)

// ParseStatus parses a stored investment status, case insensitively.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusActive, StatusCompleted, StatusLate, StatusDefaulted, StatusPending:
		return st, nil
	default:
		return "", fmt.Errorf("unknown investment status %q", s)
	}
}

func (s *Status) UnmarshalJSON(b []byte) (err error) {
	*s, err = decodeEnum(b, ParseStatus)
	return err
}

// IsOpen reports whether the status describes capital still deployed,
// including troubled positions.
func (s Status) IsOpen() bool {
	return s == StatusActive || s == StatusLate || s == StatusDefaulted
}

// Platform is the issuer or marketplace an investment was bought on.
type Platform struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type,omitempty"`
}

// UnknownPlatform labels investments whose platform cannot be found.
const UnknownPlatform = "Unknown"

// platformNames indexes platform names by id.
func platformNames(platforms []Platform) map[string]string {
	names := make(map[string]string, len(platforms))
	for _, p := range platforms {
		names[p.ID] = p.Name
	}
	return names
}

// Investment is a single fixed-income position.
type Investment struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name,omitempty"`
	PlatformID          string    `json:"platformId"`
	FaceValue           Money     `json:"faceValue"`
	ExpectedIRR         Percent   `json:"expectedIrr"`
	StartDate           date.Date `json:"startDate"`
	EndDate             date.Date `json:"endDate"`
	Status              Status    `json:"status"`
	TotalExpectedProfit Money     `json:"totalExpectedProfit"`
	Reinvested          bool      `json:"isReinvestment,omitempty"`
}

// Start returns the start date, ok is false when it is missing.
func (inv Investment) Start() (date.Date, bool) { return inv.StartDate, !inv.StartDate.IsZero() }

// End returns the end date, ok is false when it is missing.
func (inv Investment) End() (date.Date, bool) { return inv.EndDate, !inv.EndDate.IsZero() }

// Duration returns the investment duration in calendar months (at least 1).
// ok is false when either date is missing.
func (inv Investment) Duration() (months int, ok bool) {
	start, ok := inv.Start()
	if !ok {
		return 0, false
	}
	end, ok := inv.End()
	if !ok {
		return 0, false
	}
	return DurationMonths(start, end), true
}

// ExpectedProfit is the profit the investment record announces.
func (inv Investment) ExpectedProfit() Money { return inv.TotalExpectedProfit }

// APR returns the annualized return implied by the expected profit.
// ok is false when a date is missing.
func (inv Investment) APR() (Percent, bool) {
	months, ok := inv.Duration()
	if !ok {
		return 0, false
	}
	return CalculateAPR(inv.FaceValue, inv.ExpectedProfit(), months), true
}
