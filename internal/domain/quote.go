package domain

import "time"

// PriceQuote es una cotización puntual de un par. No se cachea: cada request
// del usuario produce un fetch fresco.
type PriceQuote struct {
	Pair      string // p.ej. "SOL/USDC"
	Price     float64
	FetchedAt time.Time
}
