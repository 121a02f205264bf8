// Package cmd implements the CLI application to check transaction logs.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/cgt"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&checkCmd{}, "transactions")
	c.Register(&listCmd{}, "transactions")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var currency = flag.String("currency", cgt.DefaultCurrency, "ISO-4217 currency of prices and expenses")
var verbose = flag.Bool("v", false, "Log every parsed transaction to stderr")

// standard streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// DecodeLog parses the transaction log in file, "-" for stdin.
func DecodeLog(file string) ([]cgt.Transaction, error) {
	parser, err := cgt.NewParser(cgt.WithCurrency(*currency))
	if err != nil {
		return nil, err
	}

	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("error opening transaction log %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}

	log := newLogger(stderr, *verbose).With().Str("file", file).Logger()
	txs, err := parser.Decode(r)
	if err != nil {
		log.Debug().Err(err).Msg("transaction log rejected")
		return nil, err
	}
	for _, tx := range txs {
		log.Debug().
			Int("id", tx.ID()).
			Stringer("kind", tx.Kind()).
			Stringer("date", tx.Date()).
			Str("asset", tx.Asset()).
			Stringer("amount", tx.Amount()).
			Msg("parsed transaction")
	}
	return txs, nil
}

// logFile returns the file named in args, stdin by default.
func logFile(f *flag.FlagSet) (string, error) {
	switch f.NArg() {
	case 0:
		return "-", nil
	case 1:
		return f.Arg(0), nil
	default:
		return "", fmt.Errorf("expected at most one transaction log, got %d", f.NArg())
	}
}
