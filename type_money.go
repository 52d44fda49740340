package sukuk

import (
	"encoding/json"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Money represents an exact monetary value.
//
// The currency is optional: records decoded from a book usually carry none and
// adopt the reporting currency late, when the dashboard is built.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// ParseMoney reads an amount written as a decimal string. Unparseable or empty
// strings are read as zero.
func ParseMoney(s, currency string) Money {
	return Money{value: parseDecimal(s), cur: currency}
}

// String returns the string representation of the money value.
func (m Money) String() string {
	if m.cur == "" || money.GetCurrency(m.cur) == nil {
		s := m.value.StringFixed(2)
		if m.cur != "" {
			s += " " + m.cur
		}
		return s
	}
	cur := money.GetCurrency(m.cur)
	dec := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string                { return m.cur }
func (m Money) Decimal() decimal.Decimal        { return m.value }
func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) Cmp(n Money) int                 { return m.value.Cmp(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Mul(d decimal.Decimal) Money     { return Money{value: m.value.Mul(d), cur: m.cur} }
func (m Money) Float() float64                  { return m.value.InexactFloat64() }
func (m Money) Round(places int32) Money        { return Money{value: m.value.Round(places), cur: m.cur} }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Ratio returns m/n, or zero when n is zero.
func (m Money) Ratio(n Money) decimal.Decimal {
	if n.value.IsZero() {
		return decimal.Zero
	}
	return m.value.Div(n.value)
}

// In returns m expressed in currency when m has none yet.
func (m Money) In(currency string) Money {
	if m.cur == "" {
		m.cur = currency
	}
	return m
}

// makes the "" currency totally weak.
// Mixed currencies are not converted, the left currency wins: a book holds a
// single currency.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	return A.cur
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// MarshalJSON writes the exact amount as a JSON number. The currency is
// reported once, by the enclosing record.
func (m Money) MarshalJSON() ([]byte, error) {
	return m.value.MarshalJSON()
}

// UnmarshalJSON reads an amount written either as a JSON number or as a JSON
// string. Anything else, including unparseable strings, reads as zero.
func (m *Money) UnmarshalJSON(b []byte) error {
	var raw any
	dec := json.NewDecoder(strings.NewReader(string(b)))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case json.Number:
		m.value = parseDecimal(v.String())
	case string:
		m.value = parseDecimal(v)
	default:
		m.value = decimal.Zero
	}
	return nil
}
