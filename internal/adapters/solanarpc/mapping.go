package solanarpc

import (
	"time"

	"github.com/alejandrodnm/solbot/internal/domain"
)

// mapSignatures convierte los DTOs de getSignaturesForAddress a domain entities.
func mapSignatures(raw []signatureEntry) []domain.TransactionSignature {
	sigs := make([]domain.TransactionSignature, 0, len(raw))
	for _, r := range raw {
		sigs = append(sigs, mapSignature(r))
	}
	return sigs
}

// mapSignature convierte un signatureEntry a domain.TransactionSignature.
func mapSignature(r signatureEntry) domain.TransactionSignature {
	s := domain.TransactionSignature{
		Signature: r.Signature,
		Slot:      r.Slot,
		Failed:    len(r.Err) > 0 && string(r.Err) != "null",
	}
	if r.BlockTime != nil {
		s.BlockTime = time.Unix(*r.BlockTime, 0).UTC()
	}
	return s
}
