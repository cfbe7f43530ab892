package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gmello/stocks/renderer"
	"github.com/google/subcommands"
)

type profitSummaryCmd struct{}

func (*profitSummaryCmd) Name() string { return "profit-summary" }
func (*profitSummaryCmd) Synopsis() string {
	return "display the month-by-month realized profit for a year"
}
func (*profitSummaryCmd) Usage() string {
	return `stk profit-summary [YEAR]

  Displays realized profit, sale proceeds and capital-gains tax per
  calendar month. [YEAR] defaults to the current year.
`
}

func (*profitSummaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *profitSummaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	year := time.Now().UTC().Year()
	if f.NArg() > 0 {
		var err error
		year, err = strconv.Atoi(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not parse year %q\n", f.Arg(0))
			return subcommands.ExitUsageError
		}
	}

	portfolio, _, err := loadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ProfitSummaryMarkdown(year, portfolio.ProfitByMonth(year)))
	return subcommands.ExitSuccess
}
