package domain

import (
	"strconv"

	"github.com/gagliardetto/solana-go"
)

// Balance es el balance nativo de una cuenta. Los lamports son la fuente de
// verdad; el decimal en SOL se deriva solo al formatear, nunca se almacena.
type Balance struct {
	Lamports uint64
}

// SOL devuelve el balance en SOL usando el divisor fijo de 1e9.
func (b Balance) SOL() float64 {
	return float64(b.Lamports) / float64(solana.LAMPORTS_PER_SOL)
}

// FormatSOL devuelve el decimal en SOL sin ceros de relleno ("2.5", no "2.50").
func (b Balance) FormatSOL() string {
	return strconv.FormatFloat(b.SOL(), 'f', -1, 64)
}
