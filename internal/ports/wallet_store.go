package ports

import "github.com/alejandrodnm/solbot/internal/domain"

// WalletStore es el registro en memoria de direcciones por usuario.
// Estado mutable compartido entre comandos concurrentes: las implementaciones
// deben garantizar atomicidad de Register/Lookup.
type WalletStore interface {
	// Register inserta o sobreescribe la entrada del owner. Last write wins.
	Register(ownerID string, addr domain.Address)

	// Lookup devuelve la dirección registrada. Un miss devuelve ok=false:
	// "no registrado" es un caso esperado, no un error.
	Lookup(ownerID string) (domain.Address, bool)
}
