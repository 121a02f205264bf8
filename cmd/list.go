package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "prints the transactions of a log as JSONL" }
func (*listCmd) Usage() string {
	return `cgt list [<file>]

  Parses the transaction log (stdin when no file or "-" is given) and prints
  one JSON object per transaction, in the order of the log.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	enc := json.NewEncoder(stdout)
	for _, tx := range txs {
		if err := enc.Encode(tx); err != nil {
			fmt.Fprintf(stderr, "Error writing transaction %d: %v\n", tx.ID(), err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
