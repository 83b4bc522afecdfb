package pricefeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alejandrodnm/solbot/internal/domain"
)

const (
	defaultPriceBase = "https://price.jup.ag/v6"
	pricePath        = "/price"

	requestTimeout = 10 * time.Second
)

// ErrUnavailable: status HTTP de error, body inválido o el par pedido no
// aparece en la respuesta. Para el router todas las causas son equivalentes.
var ErrUnavailable = errors.New("price feed unavailable")

// Client es el cliente del market-data API (estilo Jupiter: GET con la
// respuesta keyed por símbolo). Sin cache, sin rate limiting, sin retries —
// un intento por invocación, misma política que el RPC de balance.
type Client struct {
	http *http.Client
	base string
}

// NewClient crea un Client contra el base URL dado.
// Si base está vacío, usa el price API público de Jupiter.
func NewClient(base string) *Client {
	if base == "" {
		base = defaultPriceBase
	}
	return &Client{
		http: &http.Client{Timeout: requestTimeout},
		base: base,
	}
}

// FetchPrice devuelve la cotización fresca del par ("SOL/USDC").
func (c *Client) FetchPrice(ctx context.Context, pair string) (domain.PriceQuote, error) {
	base, quote, ok := splitPair(pair)
	if !ok {
		return domain.PriceQuote{}, fmt.Errorf("pricefeed.FetchPrice: bad pair %q: %w", pair, ErrUnavailable)
	}

	u := fmt.Sprintf("%s%s?ids=%s&vsToken=%s",
		c.base, pricePath, url.QueryEscape(base), url.QueryEscape(quote))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("pricefeed.FetchPrice: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.PriceQuote{}, fmt.Errorf("pricefeed.FetchPrice: %w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.PriceQuote{}, fmt.Errorf("pricefeed.FetchPrice: status %d: %w", resp.StatusCode, ErrUnavailable)
	}

	var body priceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return domain.PriceQuote{}, fmt.Errorf("pricefeed.FetchPrice: decode body: %w: %w", ErrUnavailable, err)
	}

	entry, ok := body.Data[base]
	if !ok || entry.Price <= 0 {
		return domain.PriceQuote{}, fmt.Errorf("pricefeed.FetchPrice: no price for %q: %w", base, ErrUnavailable)
	}

	slog.Debug("price fetched", "pair", pair, "price", entry.Price)
	return domain.PriceQuote{
		Pair:      pair,
		Price:     entry.Price,
		FetchedAt: time.Now(),
	}, nil
}

// splitPair separa "SOL/USDC" en base y quote.
func splitPair(pair string) (base, quote string, ok bool) {
	base, quote, found := strings.Cut(pair, "/")
	if !found || base == "" || quote == "" {
		return "", "", false
	}
	return base, quote, true
}
