package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/sukuk"
	"github.com/etnz/sukuk/date"
)

// scopeFlags are the filtering flags shared by the report commands.
type scopeFlags struct {
	platform string
	period   string
	start    string
	end      string
	now      string
}

func (s *scopeFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.platform, "platform", "", "Only report on the platform with this id")
	f.StringVar(&s.period, "period", "", "Only report on investments started in the current day, week, month, quarter or year")
	f.StringVar(&s.start, "s", "", "Only report on investments started on or after this date")
	f.StringVar(&s.end, "d", "", "Only report on investments started on or before this date. Defaults to -now when -s is set")
	f.StringVar(&s.now, "now", "", "Reference date for overdue payments. Defaults to today")
}

// parse returns the filter and reference date described by the flags.
func (s *scopeFlags) parse() (sukuk.Filter, date.Date, error) {
	f := sukuk.Filter{PlatformID: s.platform}

	now := date.Today()
	if s.now != "" {
		var err error
		if now, err = date.Parse(s.now); err != nil {
			return f, now, fmt.Errorf("invalid -now: %w", err)
		}
	}

	if s.period != "" && s.start != "" {
		return f, now, fmt.Errorf("-period and -s are mutually exclusive")
	}

	switch {
	case s.period != "":
		p, err := date.ParsePeriod(s.period)
		if err != nil {
			return f, now, err
		}
		r := date.NewRange(now, p)
		f.Range = &r
	case s.start != "":
		from, err := date.Parse(s.start)
		if err != nil {
			return f, now, fmt.Errorf("invalid -s: %w", err)
		}
		to := now
		if s.end != "" {
			if to, err = date.Parse(s.end); err != nil {
				return f, now, fmt.Errorf("invalid -d: %w", err)
			}
		}
		r := date.Between(from, to)
		f.Range = &r
	case s.end != "":
		return f, now, fmt.Errorf("-d requires -s")
	}
	return f, now, nil
}
