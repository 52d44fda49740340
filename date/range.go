package date

import "fmt"

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange returns the well known period containing d.
func NewRange(d Date, period Period) Range {
	return Range{From: d.StartOf(period), To: d.EndOf(period)}
}

// Between returns the range from 'from' to 'to'. If 'from' is after 'to', they are swapped.
func Between(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

// String returns "from..to".
func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
