package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sukuk/renderer"
	"github.com/google/subcommands"
)

type statusCmd struct {
	scopeFlags
	days int
}

func (*statusCmd) Name() string     { return "status" }
func (*statusCmd) Synopsis() string { return "list late and defaulted investments and upcoming payments" }
func (*statusCmd) Usage() string {
	return `sks status [-platform <id>] [-now <date>] [-days <n>]

  Lists the investments with overdue payments, most overdue first, and the
  payments due in the next days. See 'sks topic status'.
`
}

func (c *statusCmd) SetFlags(f *flag.FlagSet) {
	c.scopeFlags.SetFlags(f)
	f.IntVar(&c.days, "days", 30, "Number of days of upcoming payments to list")
}

func (c *statusCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, now, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.days < 0 {
		fmt.Fprintf(os.Stderr, "Error: -days must not be negative\n")
		return subcommands.ExitUsageError
	}

	_, book, status := setup()
	if book == nil {
		return status
	}

	view := &renderer.Status{
		On:       now,
		Scope:    renderer.Scope(filter, book.Platforms),
		Days:     c.days,
		Troubled: book.Troubled(filter, now),
		Upcoming: book.Upcoming(filter, now, c.days),
		Names:    make(map[string]string, len(book.Investments)),
	}
	for _, inv := range book.Investments {
		view.Names[inv.ID] = inv.Name
	}
	for i := range view.Troubled {
		view.Troubled[i].Overdue = view.Troubled[i].Overdue.In(book.Currency)
	}
	for i := range view.Upcoming {
		view.Upcoming[i].Amount = view.Upcoming[i].Amount.In(book.Currency)
	}
	printMarkdown(renderer.RenderStatus(view))
	return subcommands.ExitSuccess
}
