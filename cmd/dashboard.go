package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sukuk"
	"github.com/etnz/sukuk/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// dashboardCmd holds the flags for the 'dashboard' subcommand.
type dashboardCmd struct {
	scopeFlags
	json          bool
	skipPlatforms bool
	skipCash      bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "display the portfolio dashboard" }
func (*dashboardCmd) Usage() string {
	return `sks dashboard [-platform <id>] [-period <period> | -s <date> [-d <date>]] [-now <date>] [-json]

  Displays portfolio value, returns, payment status and the share of each
  platform. See 'sks topic metrics' for the definition of each figure.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	c.scopeFlags.SetFlags(f)
	f.BoolVar(&c.json, "json", false, "Print the metrics as JSON")
	f.BoolVar(&c.skipPlatforms, "skip-platforms", false, "Do not display the platform tables")
	f.BoolVar(&c.skipCash, "skip-cash", false, "Do not display cash per platform")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	filter, now, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	_, book, status := setup()
	if book == nil {
		return status
	}
	log.Debug().Str("platform", filter.PlatformID).Stringer("now", now).Msg("computing dashboard")
	metrics := book.Metrics(sukuk.Options{Filter: filter, Now: now})

	if c.json {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(metrics); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding metrics: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	d := renderer.NewDashboard(metrics, now, filter, book.Platforms)
	printMarkdown(renderer.RenderDashboard(d, renderer.DashboardRenderOptions{
		SkipPlatforms: c.skipPlatforms,
		SkipCash:      c.skipCash,
	}))
	return subcommands.ExitSuccess
}
