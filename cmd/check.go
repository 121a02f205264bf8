package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validates a transaction log" }
func (*checkCmd) Usage() string {
	return `cgt check [<file>]

  Parses every line of the transaction log (stdin when no file or "-" is
  given). Reports the number of transactions, or the first invalid line.

Usage Examples:
$ cgt check trades.txt
ok: 12 transactions

`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	file, err := logFile(f)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	txs, err := DecodeLog(file)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "ok: %d transactions\n", len(txs))
	return subcommands.ExitSuccess
}
