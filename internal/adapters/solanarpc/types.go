package solanarpc

import "encoding/json"

// DTOs raw del protocolo JSON-RPC de Solana. Solo se usan dentro de este
// paquete; la conversión a domain entities se hace en mapping.go.

// rpcRequest es el envelope estándar de una llamada JSON-RPC 2.0.
type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      int    `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// rpcResponse es el envelope de respuesta; Result queda sin decodificar
// porque su shape depende del método.
type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// rpcError es el objeto de error del nodo.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// balanceResult es el result de getBalance.
type balanceResult struct {
	Context rpcContext `json:"context"`
	Value   uint64     `json:"value"`
}

// rpcContext acompaña a los resultados con el slot de la consulta.
type rpcContext struct {
	Slot uint64 `json:"slot"`
}

// signatureEntry es un elemento del result de getSignaturesForAddress.
type signatureEntry struct {
	Signature string          `json:"signature"`
	Slot      uint64          `json:"slot"`
	Err       json.RawMessage `json:"err"` // null si la transacción fue exitosa
	Memo      *string         `json:"memo"`
	BlockTime *int64          `json:"blockTime"`
}
