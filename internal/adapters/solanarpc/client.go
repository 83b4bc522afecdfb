package solanarpc

// client.go — JSON-RPC client del nodo Solana.
//
// A diferencia del típico cliente HTTP con retries, aquí cada llamada hace
// exactamente UN intento: el usuario que recibió un error puede reemitir el
// comando, y reintentar por debajo solo duplicaría carga contra un RPC
// público ya saturado. El rate limiter sí se mantiene — los endpoints
// públicos de mainnet cortan agresivamente por encima de ~100 req/10s.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultRPCBase = "https://api.mainnet-beta.solana.com"

	// Límite al 60% del documentado para mainnet público (100 req/10s).
	rpcRatePerSec = 6

	requestTimeout = 10 * time.Second
)

// Errores del RPC, distinguibles con errors.Is en el boundary del router.
var (
	// ErrUnavailable: fallo de red, timeout o status HTTP de error.
	ErrUnavailable = errors.New("solana rpc unavailable")
	// ErrProtocol: el endpoint respondió pero el body es inválido o el
	// resultado esperado no está.
	ErrProtocol = errors.New("solana rpc protocol error")
)

// Client es el cliente JSON-RPC con rate limiting y timeout acotado.
type Client struct {
	http    *http.Client
	base    string
	limiter *rate.Limiter
}

// NewClient crea un Client contra el base URL dado.
// Si base está vacío, usa el RPC público de mainnet.
func NewClient(base string) *Client {
	if base == "" {
		base = defaultRPCBase
	}
	return &Client{
		http:    &http.Client{Timeout: requestTimeout},
		base:    base,
		limiter: rate.NewLimiter(rpcRatePerSec, 5),
	}
}

// call ejecuta un método JSON-RPC y deja el resultado en out.
// Un solo intento; el timeout del http.Client acota la llamada completa.
func (c *Client) call(ctx context.Context, method string, params []any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w: %w", ErrUnavailable, err)
	}

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: status %d: %w", method, resp.StatusCode, ErrUnavailable)
	}

	var envelope rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%s: decode body: %w: %w", method, ErrProtocol, err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("%s: rpc error %d %q: %w",
			method, envelope.Error.Code, envelope.Error.Message, ErrProtocol)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return fmt.Errorf("%s: missing result: %w", method, ErrProtocol)
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("%s: decode result: %w: %w", method, ErrProtocol, err)
	}
	return nil
}
