package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sukuk"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// fmtCmd rewrites the book in its canonical form.
type fmtCmd struct {
	write bool
}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "format the book file" }
func (*fmtCmd) Usage() string {
	return `sks fmt [-w]

  Prints the book with one record per line, grouped by type: the currency,
  platforms, investments, cashflows then cash.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "Write the result back to the book file instead of stdout")
}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, book, status := setup()
	if book == nil {
		return status
	}

	var b bytes.Buffer
	if err := sukuk.EncodeBook(&b, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding book: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.write {
		fmt.Print(b.String())
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(cfg.BookFile, b.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", cfg.BookFile, err)
		return subcommands.ExitFailure
	}
	log.Info().Str("file", cfg.BookFile).Msg("book formatted")
	return subcommands.ExitSuccess
}
