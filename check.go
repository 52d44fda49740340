package sukuk

import (
	"errors"
	"fmt"
)

// ErrInvalidBook wraps every inconsistency reported by Book.Check.
var ErrInvalidBook = errors.New("invalid book")

// Check reports the records that break the book invariants. It never fixes
// them and the engine accepts inconsistent books anyway: Check exists to tell
// the user what the dashboard silently ignores.
func (b *Book) Check() error {
	var errs []error
	report := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidBook}, args...)...))
	}

	platforms := make(map[string]bool)
	for _, p := range b.Platforms {
		if platforms[p.ID] {
			report("platform %q is defined twice", p.ID)
		}
		platforms[p.ID] = true
	}

	investments := make(map[string]bool)
	for _, inv := range b.Investments {
		if investments[inv.ID] {
			report("investment %q is defined twice", inv.ID)
		}
		investments[inv.ID] = true
		if !platforms[inv.PlatformID] {
			report("investment %q refers to unknown platform %q", inv.ID, inv.PlatformID)
		}
		if !isKnown(inv.Status, ParseStatus) {
			report("investment %q: unknown investment status %q", inv.ID, inv.Status)
		}
		start, hasStart := inv.Start()
		end, hasEnd := inv.End()
		if hasStart && hasEnd && end.Before(start) {
			report("investment %q ends on %s before it starts on %s", inv.ID, end, start)
		}
	}

	for _, c := range b.Cashflows {
		if !investments[c.InvestmentID] {
			report("cashflow %q refers to unknown investment %q", c.ID, c.InvestmentID)
		}
		if !isKnown(c.Status, ParseCashflowStatus) {
			report("cashflow %q has unknown status %q", c.ID, c.Status)
		}
		if !isKnown(c.Kind, ParseCashflowKind) {
			report("cashflow %q has unknown type %q", c.ID, c.Kind)
		}
		_, hasReceived := c.Received()
		switch {
		case c.IsReceived() && !hasReceived:
			report("cashflow %q is received but has no received date", c.ID)
		case !c.IsReceived() && hasReceived:
			report("cashflow %q has a received date but status %q", c.ID, c.Status)
		}
	}

	for _, tx := range b.Cash {
		if !isKnown(tx.Kind, ParseCashKind) {
			report("cash transaction %q has unknown type %q", tx.ID, tx.Kind)
		}
		if tx.PlatformID != "" && !platforms[tx.PlatformID] {
			report("cash transaction %q refers to unknown platform %q", tx.ID, tx.PlatformID)
		}
	}

	return errors.Join(errs...)
}
