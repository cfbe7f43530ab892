// Package renderer turns computed portfolio reports into markdown, ready to
// be rendered on a terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/gmello/stocks"
)

// SummaryMarkdown renders the portfolio valuation table for a given date.
// Rows are expected sorted by symbol; a totals line closes the table.
func SummaryMarkdown(asOf stocks.Datetime, rows []stocks.StockSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Portfolio Summary on %s\n\n", asOf)

	if len(rows) == 0 {
		fmt.Fprintln(&b, "The portfolio holds no open position.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Name | Quantity | Price | Value | Change (Day) | % Change (Day) | Average Price | Profit | % Profit |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|---:|")

	var value, lastValue, cost, change, profit stocks.Money
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %.2f%% | %s | %s | %.2f%% |\n",
			row.Symbol,
			row.Quantity,
			row.Price,
			row.Value,
			row.Change.SignedString(),
			row.ChangePercent(),
			row.AveragePrice,
			row.Profit.SignedString(),
			row.ProfitPercent(),
		)
		value = value.Add(row.Value)
		lastValue = lastValue.Add(row.LastValue)
		cost = cost.Add(row.Cost)
		change = change.Add(row.Change)
		profit = profit.Add(row.Profit)
	}

	fmt.Fprintf(&b, "| **Total** | | | **%s** | %s | %.2f%% | | %s | %.2f%% |\n",
		value,
		change.SignedString(),
		percent(change, lastValue),
		profit.SignedString(),
		percent(profit, cost),
	)

	return b.String()
}

// ProfitSummaryMarkdown renders the month-by-month realized profit table
// for a year, with the capital-gains tax column.
func ProfitSummaryMarkdown(year int, months [12]stocks.MonthSummary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Realized Profit in %d\n\n", year)
	fmt.Fprintln(&b, "| Month | Proceeds | Profit | Tax |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")

	var proceeds, profit, tax stocks.Money
	for m, summary := range months {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			monthNames[m],
			summary.Proceeds,
			summary.Profit.SignedString(),
			summary.Tax().SignedString(),
		)
		proceeds = proceeds.Add(summary.Proceeds)
		profit = profit.Add(summary.Profit)
		tax = tax.Add(summary.Tax())
	}

	fmt.Fprintf(&b, "| **Total** | **%s** | %s | %s |\n",
		proceeds,
		profit.SignedString(),
		tax.SignedString(),
	)

	return b.String()
}

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func percent(num, den stocks.Money) float64 {
	if den.IsZero() {
		return 0
	}
	return num.InexactFloat64() / den.InexactFloat64() * 100
}
