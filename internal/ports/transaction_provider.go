package ports

import (
	"context"

	"github.com/alejandrodnm/solbot/internal/domain"
)

// TransactionProvider lista las firmas confirmadas más recientes de una cuenta.
type TransactionProvider interface {
	// FetchRecentSignatures devuelve hasta limit firmas, de más reciente a
	// más antigua. Un slice vacío es un resultado normal, no un error.
	FetchRecentSignatures(ctx context.Context, addr domain.Address, limit int) ([]domain.TransactionSignature, error)
}
