package domain

// WalletEntry asocia la identidad de un usuario con su dirección registrada.
// El registry es el único dueño de estos valores; viven lo que viva el
// proceso (limitación aceptada, no persisten).
type WalletEntry struct {
	OwnerID string
	Address Address
}
