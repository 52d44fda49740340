// Package cmd implements the CLI application reporting on a sukuk portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/sukuk"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&dashboardCmd{}, "reports")
	c.Register(&cashCmd{}, "reports")
	c.Register(&statusCmd{}, "reports")
	c.Register(&queryCmd{}, "reports")

	c.Register(&checkCmd{}, "book")
	c.Register(&fmtCmd{}, "book")

	c.Register(&aprCmd{}, "tools")
	c.Register(&topicCmd{}, "tools")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var bookFlag = flag.String("book", "", "Path to the book file (JSONL format). Defaults to $SKS_BOOK_FILE or book.jsonl")
var currencyFlag = flag.String("currency", "", "Currency of the amounts. Defaults to $SKS_CURRENCY or the book currency")
var verboseFlag = flag.Bool("v", false, "Log what is being done. Defaults to $SKS_VERBOSE")

// DecodeBook reads the book file of the configuration.
func DecodeBook(cfg Config) (*sukuk.Book, error) {
	f, err := os.Open(cfg.BookFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("book file %q does not exist, use -book or $SKS_BOOK_FILE", cfg.BookFile)
		}
		return nil, err
	}
	defer f.Close()

	book, err := sukuk.DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", cfg.BookFile, err)
	}
	if cfg.Currency != "" {
		book.Currency = cfg.Currency
	}
	log.Debug().
		Str("file", cfg.BookFile).
		Int("platforms", len(book.Platforms)).
		Int("investments", len(book.Investments)).
		Int("cashflows", len(book.Cashflows)).
		Int("cash", len(book.Cash)).
		Msg("book decoded")
	return book, nil
}

// setup loads the configuration, installs the logger and decodes the book.
// Errors are printed, the caller returns the status when the book is nil.
func setup() (Config, *sukuk.Book, subcommands.ExitStatus) {
	cfg := LoadConfig()
	SetGlobalLogger(NewLogger(cfg))
	book, err := DecodeBook(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return cfg, nil, subcommands.ExitFailure
	}
	return cfg, book, subcommands.ExitSuccess
}
