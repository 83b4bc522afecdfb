package ports

import (
	"context"

	"github.com/alejandrodnm/solbot/internal/domain"
)

// PriceProvider obtiene la cotización actual de un par desde el market-data API.
type PriceProvider interface {
	// FetchPrice devuelve la cotización fresca del par ("SOL/USDC").
	// Sin cache, sin retry: un intento por invocación.
	FetchPrice(ctx context.Context, pair string) (domain.PriceQuote, error)
}
