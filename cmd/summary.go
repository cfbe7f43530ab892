package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/gmello/stocks"
	"github.com/gmello/stocks/mfinance"
	"github.com/gmello/stocks/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the state of the portfolio at a given date" }
func (*summaryCmd) Usage() string {
	return `stk summary [DATE]

  Displays every open position with its current market value, day change
  and unrealized profit. [DATE] is "YYYY-MM-DD", interpreted as end of day
  so the day's trades are included; it defaults to today.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	asOf := stocks.Now()
	if f.NArg() > 0 {
		var err error
		asOf, err = stocks.ParseDate(f.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
	}

	portfolio, _, err := loadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	// Only open positions are valued; closed ones stay in the ledger for
	// historical queries but carry nothing to price.
	var held []*stocks.TradeHistory
	var symbols []string
	for h := range portfolio.Stocks() {
		if h.QuantityAsOf(asOf).IsPositive() {
			held = append(held, h)
			symbols = append(symbols, h.Symbol)
		}
	}

	quotes, errs := mfinance.New().Quotes(ctx, symbols)
	if errs != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not get prices for all stocks: %v\n", errs)
	}

	bySymbol := make(map[string]mfinance.Quote, len(quotes))
	for _, q := range quotes {
		bySymbol[q.Symbol] = q
	}

	rows := make([]stocks.StockSummary, 0, len(held))
	for _, h := range held {
		q, ok := bySymbol[h.Symbol]
		if !ok {
			continue
		}
		rows = append(rows, stocks.NewStockSummary(h, asOf, q.Price, q.PreviousClose))
	}

	printMarkdown(renderer.SummaryMarkdown(asOf, rows))
	return subcommands.ExitSuccess
}
