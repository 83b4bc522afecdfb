package domain

import "time"

// TransactionSignature es una firma confirmada devuelta por el RPC para una
// cuenta, con la metadata mínima que el bot muestra.
type TransactionSignature struct {
	Signature string
	Slot      uint64
	BlockTime time.Time // zero si el RPC no la reporta
	Failed    bool
}
