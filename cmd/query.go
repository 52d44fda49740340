package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/sukuk"
	"github.com/google/subcommands"
)

type queryCmd struct {
	scopeFlags
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "extract values from the dashboard metrics" }
func (*queryCmd) Usage() string {
	return `sks query [-platform <id>] [-period <period> | -s <date> [-d <date>]] [-now <date>] <jsonpath>

  Applies a JSONPath expression to the metrics printed by 'sks dashboard -json'.

  Examples:
    sks query '$.activeApr'
    sks query '$.platformDistribution[?(@.percentage > 50)].platformName'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) { c.scopeFlags.SetFlags(f) }

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one JSONPath expression")
		return subcommands.ExitUsageError
	}
	filter, now, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	_, book, status := setup()
	if book == nil {
		return status
	}

	val, err := queryMetrics(book.Metrics(sukuk.Options{Filter: filter, Now: now}), f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	out, err := json.MarshalIndent(val, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println(string(out))
	return subcommands.ExitSuccess
}

// queryMetrics evaluates a JSONPath expression on the JSON form of m.
func queryMetrics(m sukuk.DashboardMetrics, path string) (any, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	val, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("evaluating %q: %w", path, err)
	}
	// jsonpath returns a list for filters even when a single value matches.
	if list, ok := val.([]any); ok && len(list) == 1 {
		val = list[0]
	}
	return val, nil
}
