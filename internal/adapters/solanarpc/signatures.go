package solanarpc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/solbot/internal/domain"
)

const defaultSignatureLimit = 5

// FetchRecentSignatures consulta getSignaturesForAddress y devuelve hasta
// limit firmas confirmadas, de más reciente a más antigua. Una cuenta sin
// actividad devuelve un slice vacío — resultado normal, no error.
func (c *Client) FetchRecentSignatures(ctx context.Context, addr domain.Address, limit int) ([]domain.TransactionSignature, error) {
	if limit <= 0 {
		limit = defaultSignatureLimit
	}

	params := []any{
		addr.String(),
		map[string]any{
			"limit":      limit,
			"commitment": commitmentConfirmed,
		},
	}

	var result []signatureEntry
	if err := c.call(ctx, "getSignaturesForAddress", params, &result); err != nil {
		return nil, fmt.Errorf("solanarpc.FetchRecentSignatures: %w", err)
	}

	slog.Debug("signatures fetched", "address", addr.String(), "count", len(result))
	return mapSignatures(result), nil
}
