package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type buyCmd struct{}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of a stock" }
func (*buyCmd) Usage() string {
	return `stk buy <SYMBOL> <QUANTITY> <PRICE> [DATETIME]

  Records the purchase of <QUANTITY> shares of <SYMBOL> at unit price
  <PRICE>. [DATETIME] is "YYYY-MM-DD HH:MM:SS" and defaults to now.
`
}

func (*buyCmd) SetFlags(_ *flag.FlagSet) {}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := portfolio.Buy(symbol, quantity, price, datetime); err != nil {
		fmt.Fprintf(os.Stderr, "Could not buy %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("You bought %s %s at %s.\n", quantity, symbol, price)
	return savePortfolio(path, portfolio)
}
