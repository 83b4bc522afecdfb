package ports

import (
	"context"

	"github.com/alejandrodnm/solbot/internal/domain"
)

// BalanceProvider consulta el balance nativo de una cuenta en el RPC.
type BalanceProvider interface {
	// FetchBalance devuelve el balance en lamports de la dirección dada.
	// Un intento por invocación: sin retries — el usuario puede reemitir
	// el comando.
	FetchBalance(ctx context.Context, addr domain.Address) (domain.Balance, error)
}
