package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gmello/stocks"
	"github.com/google/subcommands"
)

type splitCmd struct{}

func (*splitCmd) Name() string     { return "split" }
func (*splitCmd) Synopsis() string { return "record a stock split" }
func (*splitCmd) Usage() string {
	return `stk split <SYMBOL> <RATIO> [DATE]

  Records a stock split of <SYMBOL>. A ratio above 1 is a forward split
  (e.g. 2 doubles the shares); below 1, a reverse split. [DATE] is
  "YYYY-MM-DD" and defaults to today; trades of that day precede the split.
`
}

func (*splitCmd) SetFlags(_ *flag.FlagSet) {}

func (c *splitCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	args := f.Args()
	if len(args) < 2 || len(args) > 3 {
		fmt.Fprintf(os.Stderr, "expected <SYMBOL> <RATIO> [DATE], got %d arguments\n", len(args))
		return subcommands.ExitUsageError
	}
	symbol := args[0]

	ratio, err := stocks.ParseQuantity(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not parse ratio %q: %v\n", args[1], err)
		return subcommands.ExitUsageError
	}

	datetime := stocks.Now()
	if len(args) == 3 {
		datetime, err = stocks.ParseDate(args[2])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	portfolio, path, err := loadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := portfolio.Split(symbol, ratio, datetime); err != nil {
		fmt.Fprintf(os.Stderr, "Could not split %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded a %s split of %s.\n", args[1], symbol)
	return savePortfolio(path, portfolio)
}
