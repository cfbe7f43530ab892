// Package cmd implements the CLI application to manage a stock portfolio.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/glamour"
	"github.com/gmello/stocks"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&buyCmd{},
	&sellCmd{},
	&splitCmd{},
	&summaryCmd{},
	&profitSummaryCmd{},
	&importCmd{},
}

// config holds the environment-provided settings. Flags take precedence.
type config struct {
	PortfolioFile string `env:"STOCKS_PORTFOLIO_FILE" envDefault:"portfolio.json"`
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.
var portfolioFile = flag.String("portfolio-file", "", "Path to the portfolio file (JSON). Overrides STOCKS_PORTFOLIO_FILE.")

// portfolioPath resolves the portfolio file from the flag or the environment.
func portfolioPath() (string, error) {
	if *portfolioFile != "" {
		return *portfolioFile, nil
	}
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return "", fmt.Errorf("cannot read environment configuration: %w", err)
	}
	return cfg.PortfolioFile, nil
}

// loadPortfolio reads the portfolio file, falling back to an empty
// portfolio when the file is missing or unreadable. Trades would otherwise
// be unrecordable on first use.
func loadPortfolio() (*stocks.Portfolio, string, error) {
	path, err := portfolioPath()
	if err != nil {
		return nil, "", err
	}
	p, err := stocks.Load(path)
	if err != nil {
		log.Printf("could not load portfolio: %v", err)
		log.Printf("starting with an empty portfolio")
		p = stocks.NewPortfolio()
	}
	return p, path, nil
}

// savePortfolio persists the portfolio, reporting failure without exiting.
func savePortfolio(path string, p *stocks.Portfolio) subcommands.ExitStatus {
	if err := stocks.Save(path, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving portfolio: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer is unavailable (e.g. output is not a TTY).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// parseTradeArgs parses the positional <SYMBOL> <QUANTITY> <PRICE>
// [DATETIME] arguments shared by buy and sell.
func parseTradeArgs(args []string) (symbol string, quantity stocks.Quantity, price stocks.Money, datetime stocks.Datetime, err error) {
	if len(args) < 3 || len(args) > 4 {
		return "", stocks.Q(0), stocks.M(0), stocks.Datetime{}, fmt.Errorf("expected <SYMBOL> <QUANTITY> <PRICE> [DATETIME], got %d arguments", len(args))
	}
	symbol = args[0]

	quantity, err = parseQuantity(args[1])
	if err != nil {
		return "", stocks.Q(0), stocks.M(0), stocks.Datetime{}, err
	}

	price, err = stocks.ParseMoney(args[2])
	if err != nil {
		return "", stocks.Q(0), stocks.M(0), stocks.Datetime{}, fmt.Errorf("could not parse price %q: %w", args[2], err)
	}

	datetime = stocks.Now()
	if len(args) == 4 {
		datetime, err = stocks.ParseDatetime(args[3])
		if err != nil {
			return "", stocks.Q(0), stocks.M(0), stocks.Datetime{}, err
		}
	}
	return symbol, quantity, price, datetime, nil
}

func parseQuantity(arg string) (stocks.Quantity, error) {
	n, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || n == 0 {
		return stocks.Q(0), fmt.Errorf("could not parse quantity %q: expected a positive whole number", arg)
	}
	return stocks.Q(n), nil
}
