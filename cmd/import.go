package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gmello/stocks"
	"github.com/google/subcommands"
	"github.com/schollz/progressbar/v3"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replay a trade history file into the portfolio" }
func (*importCmd) Usage() string {
	return `stk import <FILE>

  Replays a semicolon-separated history file into the portfolio. Each line
  after the header is "symbol;date;kind;quantity;price" where kind is buy
  or sell and date is "YYYY-MM-DD HH:MM:SS".
`
}

func (*importCmd) SetFlags(_ *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected the history file path")
		return subcommands.ExitUsageError
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not open history file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	portfolio, path, err := loadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("Importing trades..."),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
	)

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		if line == 1 || strings.TrimSpace(scanner.Text()) == "" {
			continue // header
		}
		if err := replayTrade(portfolio, scanner.Text()); err != nil {
			fmt.Fprintf(os.Stderr, "\nline %d: %v\n", line, err)
			return subcommands.ExitFailure
		}
		bar.Add(1)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "\ncould not read history file: %v\n", err)
		return subcommands.ExitFailure
	}
	bar.Finish()
	fmt.Println()

	fmt.Printf("Imported %d trades.\n", line-1)
	return savePortfolio(path, portfolio)
}

// replayTrade applies one "symbol;date;kind;quantity;price" record.
func replayTrade(portfolio *stocks.Portfolio, record string) error {
	fields := strings.Split(record, ";")
	if len(fields) != 5 {
		return fmt.Errorf("expected 5 fields, got %d", len(fields))
	}
	symbol := strings.TrimSpace(fields[0])

	datetime, err := stocks.ParseDatetime(fields[1])
	if err != nil {
		// Some histories only carry the day.
		datetime, err = stocks.ParseDate(fields[1])
		if err != nil {
			return err
		}
	}

	quantity, err := parseQuantity(strings.TrimSpace(fields[3]))
	if err != nil {
		return err
	}
	price, err := stocks.ParseMoney(strings.TrimSpace(fields[4]))
	if err != nil {
		return fmt.Errorf("could not parse price %q: %w", fields[4], err)
	}

	switch strings.ToLower(strings.TrimSpace(fields[2])) {
	case "buy":
		return portfolio.Buy(symbol, quantity, price, datetime)
	case "sell":
		_, err := portfolio.Sell(symbol, quantity, price, datetime)
		return err
	default:
		return fmt.Errorf("unknown trade kind %q", fields[2])
	}
}
