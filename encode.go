package stocks

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MarshalJSON implements json.Marshaler. Symbols are emitted in sorted
// order and every nested object has a fixed field order, so the document is
// canonical: decode then encode reproduces the file byte for byte.
func (p Portfolio) MarshalJSON() ([]byte, error) {
	var stocksObj jsonObjectWriter
	for _, symbol := range slices.Sorted(maps.Keys(p.stocks)) {
		stocksObj.Append(symbol, p.stocks[symbol])
	}
	stocksBytes, err := stocksObj.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var w jsonObjectWriter
	w.AppendRaw("stocks", stocksBytes)
	return w.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Portfolio) UnmarshalJSON(data []byte) error {
	var temp struct {
		Stocks map[string]*TradeHistory `json:"stocks"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	p.stocks = make(map[string]*TradeHistory, len(temp.Stocks))
	for symbol, h := range temp.Stocks {
		key := canonical(symbol)
		if h.Symbol == "" {
			h.Symbol = key
		}
		p.stocks[key] = h
	}
	return nil
}

// Load reads a portfolio from a JSON file. The path is explicit: callers,
// not this package, decide where a portfolio lives.
func Load(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read portfolio file %q: %w", path, err)
	}
	p := NewPortfolio()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("cannot parse portfolio file %q: %w", path, err)
	}
	return p, nil
}

// Save writes the portfolio to a JSON file, overwriting it whole.
func Save(path string, p *Portfolio) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("cannot encode portfolio: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("cannot write portfolio file %q: %w", path, err)
	}
	return nil
}
