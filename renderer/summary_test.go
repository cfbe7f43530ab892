package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/gmello/stocks"
)

func TestSummaryMarkdown(t *testing.T) {
	h := stocks.NewTradeHistory("PETR4")
	h.Append(stocks.NewBuy(stocks.Q(100), stocks.M(10), stocks.NewDatetime(2024, time.January, 10, 12, 0, 0)))

	asOf := stocks.NewDatetime(2024, time.March, 1, 23, 59, 59)
	rows := []stocks.StockSummary{
		stocks.NewStockSummary(h, asOf, stocks.M(12), stocks.M(11)),
	}

	md := SummaryMarkdown(asOf, rows)

	for _, want := range []string{
		"# Portfolio Summary on 2024-03-01T23:59:59Z",
		"| Name | Quantity | Price | Value | Change (Day) | % Change (Day) | Average Price | Profit | % Profit |",
		"| PETR4 | 100 |",
		"**Total**",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, md)
		}
	}

	// 100 shares: value 1200, last value 1100, cost 1000.
	if !strings.Contains(md, "+R$100,00") {
		t.Errorf("SummaryMarkdown() missing the day change in:\n%s", md)
	}
	if !strings.Contains(md, "+R$200,00") {
		t.Errorf("SummaryMarkdown() missing the unrealized profit in:\n%s", md)
	}
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	asOf := stocks.NewDatetime(2024, time.March, 1, 23, 59, 59)
	md := SummaryMarkdown(asOf, nil)
	if !strings.Contains(md, "The portfolio holds no open position.") {
		t.Errorf("SummaryMarkdown() missing the empty notice in:\n%s", md)
	}
	if strings.Contains(md, "**Total**") {
		t.Errorf("SummaryMarkdown() rendered a totals row with no rows")
	}
}

func TestProfitSummaryMarkdown(t *testing.T) {
	var months [12]stocks.MonthSummary
	months[1] = stocks.MonthSummary{Profit: stocks.M(1000), Proceeds: stocks.M(25000)}
	months[4] = stocks.MonthSummary{Profit: stocks.M(-200), Proceeds: stocks.M(3000)}

	md := ProfitSummaryMarkdown(2024, months)

	for _, want := range []string{
		"# Realized Profit in 2024",
		"| Month | Proceeds | Profit | Tax |",
		"| February | R$25.000,00 | +R$1.000,00 | +R$150,00 |",
		"| May | R$3.000,00 | -R$200,00 | - |",
		"| January | R$0,00 | - | - |",
		"| **Total** | **R$28.000,00** | +R$800,00 | +R$150,00 |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("ProfitSummaryMarkdown() missing %q in:\n%s", want, md)
		}
	}
}
