package domain

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Address es una dirección de cuenta Solana validada.
// Invariante: solo se construye vía ParseAddress, así que una Address no-cero
// siempre decodifica a una public key de 32 bytes y es parseable por el RPC.
type Address struct {
	key solana.PublicKey
}

// ParseAddress valida una dirección en base58. Puramente sintáctico, sin I/O:
// falla para cualquier string que no decodifique exactamente a 32 bytes.
func ParseAddress(s string) (Address, error) {
	key, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return Address{}, fmt.Errorf("domain.ParseAddress: %q: %w", s, err)
	}
	return Address{key: key}, nil
}

// String devuelve la codificación base58 canónica.
func (a Address) String() string {
	return a.key.String()
}

// IsZero devuelve true para el zero value. La pubkey todo-ceros (la
// SystemProgram address) parsea bien y colapsa con él; es la única.
func (a Address) IsZero() bool {
	return a.key.IsZero()
}
