package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/sukuk"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "report inconsistencies in the book" }
func (*checkCmd) Usage() string {
	return `sks check

  Reports duplicate ids, dangling references, inconsistent dates and
  unknown statuses. The book is not modified.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, book, status := setup()
	if book == nil {
		return status
	}
	err := book.Check()
	if err == nil {
		fmt.Printf("%s is consistent.\n", cfg.BookFile)
		return subcommands.ExitSuccess
	}
	if !errors.Is(err, sukuk.ErrInvalidBook) {
		log.Warn().Err(err).Msg("unexpected check error")
	}
	fmt.Fprintf(os.Stderr, "%s is not consistent:\n%v\n", cfg.BookFile, err)
	return subcommands.ExitFailure
}
