package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sukuk"
	"github.com/google/subcommands"
)

// aprCmd computes the returns of a single investment without a book.
type aprCmd struct {
	amount   string
	profit   string
	irr      float64
	months   int
	currency string
}

func (*aprCmd) Name() string     { return "apr" }
func (*aprCmd) Synopsis() string { return "compute the annual rate of an investment" }
func (*aprCmd) Usage() string {
	return `sks apr -amount <amount> -months <n> (-profit <amount> | -irr <rate>)

  With -profit, prints the annual rate and the return on investment.
  With -irr, prints the profit expected at that annual rate.
`
}

func (c *aprCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "Amount invested")
	f.StringVar(&c.profit, "profit", "", "Total profit of the investment")
	f.Float64Var(&c.irr, "irr", 0, "Expected annual rate, in percent")
	f.IntVar(&c.months, "months", 12, "Duration of the investment in months")
	f.StringVar(&c.currency, "currency", "", "Currency of the amounts")
}

func (c *aprCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" || (c.profit == "") == (c.irr == 0) {
		fmt.Fprintln(os.Stderr, "Error: -amount and exactly one of -profit or -irr are required")
		return subcommands.ExitUsageError
	}
	if c.months <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -months must be positive")
		return subcommands.ExitUsageError
	}

	amount := sukuk.ParseMoney(c.amount, c.currency)
	if c.profit == "" {
		profit := sukuk.CalculateExpectedProfit(amount, sukuk.Percent(c.irr), c.months)
		fmt.Printf("Expected profit: %s\n", profit)
		return subcommands.ExitSuccess
	}

	profit := sukuk.ParseMoney(c.profit, c.currency)
	fmt.Printf("APR: %s\n", sukuk.CalculateAPR(amount, profit, c.months))
	fmt.Printf("ROI: %s\n", sukuk.ROI(amount, profit))
	return subcommands.ExitSuccess
}
