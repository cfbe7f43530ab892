package mfinance

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gmello/stocks"
)

// newTestServer serves a fixed market: two stocks and one FII.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/stocks/symbols/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`["PETR4","VALE3"]`))
	})
	mux.HandleFunc("/fiis/symbols/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`["HGLG11"]`))
	})
	mux.HandleFunc("/stocks/petr4", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"symbol":"PETR4","lastPrice":37.5,"closingPrice":36.9}`))
	})
	mux.HandleFunc("/fiis/hglg11", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"symbol":"HGLG11","lastPrice":160.2,"closingPrice":161}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Class(t *testing.T) {
	c := NewWithBaseURL(newTestServer(t).URL)
	ctx := context.Background()

	tests := []struct {
		symbol string
		want   AssetClass
	}{
		{"PETR4", ClassStock},
		{"petr4", ClassStock},
		{"HGLG11", ClassFII},
	}
	for _, tt := range tests {
		got, err := c.Class(ctx, tt.symbol)
		if err != nil {
			t.Errorf("Class(%s) error = %v", tt.symbol, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Class(%s) = %s, want %s", tt.symbol, got, tt.want)
		}
	}

	if _, err := c.Class(ctx, "XXXX3"); !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("Class(XXXX3) error = %v, want ErrUnknownAsset", err)
	}
}

func TestClient_Quote(t *testing.T) {
	c := NewWithBaseURL(newTestServer(t).URL)

	q, err := c.Quote(context.Background(), "petr4")
	if err != nil {
		t.Fatalf("Quote() error = %v", err)
	}
	if q.Symbol != "PETR4" {
		t.Errorf("Symbol = %q, want PETR4", q.Symbol)
	}
	if !q.Price.Equal(stocks.M(37.5)) {
		t.Errorf("Price = %s, want %s", q.Price, stocks.M(37.5))
	}
	if !q.PreviousClose.Equal(stocks.M(36.9)) {
		t.Errorf("PreviousClose = %s, want %s", q.PreviousClose, stocks.M(36.9))
	}
}

func TestClient_Quotes_PartialFailure(t *testing.T) {
	c := NewWithBaseURL(newTestServer(t).URL)

	quotes, err := c.Quotes(context.Background(), []string{"PETR4", "XXXX3", "HGLG11"})
	if err == nil {
		t.Errorf("Quotes() error = nil, want the unknown symbol reported")
	}
	if !errors.Is(err, ErrUnknownAsset) {
		t.Errorf("Quotes() error = %v, want ErrUnknownAsset", err)
	}
	if len(quotes) != 2 {
		t.Fatalf("Quotes() returned %d quotes, want 2", len(quotes))
	}
	got := map[string]bool{}
	for _, q := range quotes {
		got[q.Symbol] = true
	}
	if !got["PETR4"] || !got["HGLG11"] {
		t.Errorf("Quotes() = %v, want PETR4 and HGLG11", got)
	}
}

func TestClient_Quotes_Empty(t *testing.T) {
	c := NewWithBaseURL(newTestServer(t).URL)
	quotes, err := c.Quotes(context.Background(), nil)
	if err != nil {
		t.Errorf("Quotes(nil) error = %v", err)
	}
	if len(quotes) != 0 {
		t.Errorf("Quotes(nil) = %v, want none", quotes)
	}
}
