package sukuk

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/sukuk/date"
)

// CashKind is the nature of a cash movement on the investor's account.
type CashKind string

const (
	Deposit      CashKind = "deposit"
	Withdrawal   CashKind = "withdrawal"
	Distribution CashKind = "distribution"
	Investing    CashKind = "investment"
)

// ParseCashKind parses a cash transaction type, case insensitively.
func ParseCashKind(s string) (CashKind, error) {
	switch k := CashKind(strings.ToLower(strings.TrimSpace(s))); k {
	case Deposit, Withdrawal, Distribution, Investing:
		return k, nil
	default:
		return "", fmt.Errorf("unknown cash type %q", s)
	}
}

func (k *CashKind) UnmarshalJSON(b []byte) (err error) {
	*k, err = decodeEnum(b, ParseCashKind)
	return err
}

// sign returns +1 for movements that credit the balance, -1 for those that
// debit it, and 0 for unknown kinds.
func (k CashKind) sign() int {
	switch k {
	case Deposit, Distribution:
		return 1
	case Withdrawal, Investing:
		return -1
	default:
		return 0
	}
}

// CashTransaction is a movement of liquid cash. A transaction without
// platform is only visible in the all-platforms view.
type CashTransaction struct {
	ID          string    `json:"id"`
	Amount      Money     `json:"amount"`
	Kind        CashKind  `json:"type"`
	PlatformID  string    `json:"platformId,omitempty"`
	Date        date.Date `json:"date"`
	Description string    `json:"description,omitempty"`
}

// Signed returns the effect of the transaction on the balance.
func (tx CashTransaction) Signed() Money {
	switch tx.Kind.sign() {
	case 1:
		return tx.Amount
	case -1:
		return tx.Amount.Neg()
	default:
		return M(0, tx.Amount.Currency())
	}
}

// TotalCash returns the net balance of the transactions.
// It is a plain sum: the order of the transactions does not matter.
func TotalCash(transactions []CashTransaction) Money {
	var total Money
	for _, tx := range transactions {
		total = total.Add(tx.Signed())
	}
	return total
}

// CashByPlatform breaks the balance down per platform.
//
// When platformID is set, the transactions are expected to be already filtered
// on it and the whole balance, possibly zero, is attributed to that platform.
// Otherwise each transaction counts for its own platform, and transactions
// without platform are left out of the breakdown.
func CashByPlatform(transactions []CashTransaction, platformID string) map[string]Money {
	res := make(map[string]Money)
	if platformID != "" {
		res[platformID] = TotalCash(transactions)
		return res
	}
	for _, tx := range transactions {
		if tx.PlatformID == "" {
			continue
		}
		res[tx.PlatformID] = res[tx.PlatformID].Add(tx.Signed())
	}
	return res
}

// CashBalance is the cash held on one platform.
type CashBalance struct {
	PlatformID   string `json:"platformId"`
	PlatformName string `json:"platformName"`
	Balance      Money  `json:"balance"`
}

// CashBalances returns the per platform breakdown sorted by platform name.
func CashBalances(byPlatform map[string]Money, platforms []Platform) []CashBalance {
	names := platformNames(platforms)
	res := make([]CashBalance, 0, len(byPlatform))
	for id, balance := range byPlatform {
		name, ok := names[id]
		if !ok {
			name = UnknownPlatform
		}
		res = append(res, CashBalance{PlatformID: id, PlatformName: name, Balance: balance})
	}
	slices.SortFunc(res, func(a, b CashBalance) int {
		if c := cmp.Compare(a.PlatformName, b.PlatformName); c != 0 {
			return c
		}
		return cmp.Compare(a.PlatformID, b.PlatformID)
	})
	return res
}
