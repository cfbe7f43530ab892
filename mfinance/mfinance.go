// Package mfinance fetches live quotes for Brazilian stocks and FIIs from
// the mfinance.com.br public API.
package mfinance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gmello/stocks"
	"golang.org/x/sync/errgroup"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://mfinance.com.br/api/v1"

// AssetClass selects the API family a symbol is quoted under.
type AssetClass string

const (
	ClassStock AssetClass = "stocks"
	ClassFII   AssetClass = "fiis"
)

// ErrUnknownAsset is returned when a symbol is listed under no asset class.
var ErrUnknownAsset = errors.New("asset not found in the stock market")

// Quote is the price information for one symbol.
type Quote struct {
	Symbol        string
	Price         stocks.Money
	PreviousClose stocks.Money
}

// Client queries the mfinance API. The zero value is not usable; call New.
type Client struct {
	baseURL string
	http    httpGetter
}

// New returns a client against the production API. Responses are cached on
// disk with a daily expiry, so repeated invocations in the same day do not
// hammer the remote service.
func New() *Client {
	return &Client{baseURL: DefaultBaseURL, http: newDailyCachingClient()}
}

// NewWithBaseURL returns a client against a custom endpoint, without
// caching. Intended for tests.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{baseURL: strings.TrimSuffix(baseURL, "/"), http: newPlainClient()}
}

// Class determines the asset class of a symbol by probing the symbol lists
// of every class, one concurrent request each.
func (c *Client) Class(ctx context.Context, symbol string) (AssetClass, error) {
	symbol = strings.ToUpper(symbol)
	classes := []AssetClass{ClassFII, ClassStock}
	listed := make([]bool, len(classes))

	g, ctx := errgroup.WithContext(ctx)
	for i, class := range classes {
		g.Go(func() error {
			list, err := c.symbols(ctx, class)
			if err != nil {
				return err
			}
			for _, s := range list {
				if strings.EqualFold(s, symbol) {
					listed[i] = true
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	for i, class := range classes {
		if listed[i] {
			return class, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownAsset, symbol)
}

// Quote fetches the current price and previous close for one symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (Quote, error) {
	class, err := c.Class(ctx, symbol)
	if err != nil {
		return Quote{}, err
	}
	return c.quote(ctx, class, symbol)
}

// Quotes fetches every symbol concurrently, one request per symbol. It
// returns the quotes that succeeded; failures are joined into the returned
// error so the caller can report them without losing the rest.
func (c *Client) Quotes(ctx context.Context, symbols []string) ([]Quote, error) {
	quotes := make([]Quote, len(symbols))
	errs := make([]error, len(symbols))

	var g errgroup.Group
	for i, symbol := range symbols {
		g.Go(func() error {
			quotes[i], errs[i] = c.Quote(ctx, symbol)
			return nil
		})
	}
	g.Wait() // goroutines only report through errs

	ok := quotes[:0]
	for i := range quotes {
		if errs[i] == nil {
			ok = append(ok, quotes[i])
		}
	}
	return ok, errors.Join(errs...)
}

// quote fetches one symbol of a known class.
func (c *Client) quote(ctx context.Context, class AssetClass, symbol string) (Quote, error) {
	// https://mfinance.com.br/api/v1/stocks/bbas3
	addr := fmt.Sprintf("%s/%s/%s", c.baseURL, class, strings.ToLower(symbol))

	var payload struct {
		Symbol       string       `json:"symbol"`
		LastPrice    stocks.Money `json:"lastPrice"`
		ClosingPrice stocks.Money `json:"closingPrice"`
	}
	if err := jwget(ctx, c.http, addr, &payload); err != nil {
		return Quote{}, fmt.Errorf("could not fetch %s quote: %w", strings.ToUpper(symbol), err)
	}
	return Quote{
		Symbol:        strings.ToUpper(symbol),
		Price:         payload.LastPrice,
		PreviousClose: payload.ClosingPrice,
	}, nil
}

// symbols fetches the full symbol list of an asset class.
func (c *Client) symbols(ctx context.Context, class AssetClass) ([]string, error) {
	// https://mfinance.com.br/api/v1/stocks/symbols/
	addr := fmt.Sprintf("%s/%s/symbols/", c.baseURL, class)

	list := make([]string, 0)
	if err := jwget(ctx, c.http, addr, &list); err != nil {
		return nil, fmt.Errorf("could not fetch %s symbol list: %w", class, err)
	}
	return list, nil
}
