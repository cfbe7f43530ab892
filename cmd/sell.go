package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type sellCmd struct{}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of a stock" }
func (*sellCmd) Usage() string {
	return `stk sell <SYMBOL> <QUANTITY> <PRICE> [DATETIME]

  Records the sale of <QUANTITY> shares of <SYMBOL> at unit price <PRICE>
  and reports the realized profit. [DATETIME] is "YYYY-MM-DD HH:MM:SS" and
  defaults to now.
`
}

func (*sellCmd) SetFlags(_ *flag.FlagSet) {}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, quantity, price, datetime, err := parseTradeArgs(f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	portfolio, path, err := loadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	profit, err := portfolio.Sell(symbol, quantity, price, datetime)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not sell %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("You sold %s %s profiting %s.\n", quantity, symbol, profit)
	return savePortfolio(path, portfolio)
}
