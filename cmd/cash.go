package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sukuk"
	"github.com/etnz/sukuk/renderer"
	"github.com/google/subcommands"
)

type cashCmd struct {
	platform string
}

func (*cashCmd) Name() string     { return "cash" }
func (*cashCmd) Synopsis() string { return "display cash balances per platform" }
func (*cashCmd) Usage() string {
	return `sks cash [-platform <id>]

  Displays the net cash balance and its split across platforms. Cash not
  assigned to a platform only counts in the total.
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.platform, "platform", "", "Attribute all cash of this platform to it")
}

func (c *cashCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, book, status := setup()
	if book == nil {
		return status
	}
	filter := sukuk.Filter{PlatformID: c.platform}
	_, txs, _ := filter.Apply(nil, book.Cash, nil)

	view := &renderer.Cash{
		Scope:    renderer.Scope(filter, book.Platforms),
		Total:    sukuk.TotalCash(txs).In(book.Currency),
		Balances: sukuk.CashBalances(sukuk.CashByPlatform(txs, c.platform), book.Platforms),
	}
	for i := range view.Balances {
		view.Balances[i].Balance = view.Balances[i].Balance.In(book.Currency)
	}
	if len(txs) == 0 {
		fmt.Fprintln(os.Stderr, "No cash transaction.")
	}
	printMarkdown(renderer.RenderCash(view))
	return subcommands.ExitSuccess
}
