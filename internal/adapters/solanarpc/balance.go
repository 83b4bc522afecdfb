package solanarpc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/solbot/internal/domain"
)

// commitment usado en todas las consultas: estado confirmado por el cluster.
const commitmentConfirmed = "confirmed"

// FetchBalance consulta getBalance para la dirección dada.
// Devuelve los lamports tal cual los reporta el nodo; la conversión a SOL
// es responsabilidad de domain.Balance al formatear.
func (c *Client) FetchBalance(ctx context.Context, addr domain.Address) (domain.Balance, error) {
	params := []any{
		addr.String(),
		map[string]string{"commitment": commitmentConfirmed},
	}

	var result balanceResult
	if err := c.call(ctx, "getBalance", params, &result); err != nil {
		return domain.Balance{}, fmt.Errorf("solanarpc.FetchBalance: %w", err)
	}

	slog.Debug("balance fetched",
		"address", addr.String(),
		"lamports", result.Value,
		"slot", result.Context.Slot,
	)
	return domain.Balance{Lamports: result.Value}, nil
}
