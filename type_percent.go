package sukuk

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Percent is a percentage: 12 means 12%.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// UnmarshalJSON accepts a JSON number or a numeric string like "12" or "12.5%".
// Unparseable values read as zero.
func (p *Percent) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case float64:
		*p = Percent(v)
	case string:
		*p = Percent(parseDecimal(strings.TrimSuffix(strings.TrimSpace(v), "%")).InexactFloat64())
	default:
		*p = 0
	}
	return nil
}

// percentOf returns part/total*100, or 0 when total is zero.
func percentOf(part, total decimal.Decimal) Percent {
	if total.IsZero() {
		return 0
	}
	return Percent(part.Div(total).Mul(hundred).InexactFloat64())
}

var hundred = decimal.NewFromInt(100)
