package telegram

// client.go — transporte del Bot API de Telegram.
//
// Implementa los dos ports del chat-transport: Messenger (sendMessage) y
// CommandSource (long-poll de getUpdates). El timeout del http.Client debe
// superar al del long-poll, si no cada getUpdates moriría antes de que
// Telegram responda.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	defaultAPIBase = "https://api.telegram.org"

	defaultPollTimeout = 30 * time.Second
	httpTimeoutMargin  = 10 * time.Second
)

// ErrSendRejected: el Bot API rechazó el envío (chat inexistente, bot
// bloqueado, etc.). Las notificaciones son best-effort: se loguea y ya.
var ErrSendRejected = errors.New("telegram send rejected")

// Client habla con el Bot API usando el token del bot.
type Client struct {
	http        *http.Client
	base        string // p.ej. https://api.telegram.org/bot<token>
	pollTimeout time.Duration
}

// NewClient crea un Client para el token dado.
// Si apiBase está vacío usa el endpoint oficial; pollTimeout <= 0 usa 30s.
func NewClient(token, apiBase string, pollTimeout time.Duration) *Client {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	if pollTimeout <= 0 {
		pollTimeout = defaultPollTimeout
	}
	return &Client{
		http:        &http.Client{Timeout: pollTimeout + httpTimeoutMargin},
		base:        fmt.Sprintf("%s/bot%s", apiBase, token),
		pollTimeout: pollTimeout,
	}
}

// Send entrega texto a un chat vía sendMessage. Implementa ports.Messenger.
func (c *Client) Send(ctx context.Context, conversationID, text string) error {
	chatID, err := strconv.ParseInt(conversationID, 10, 64)
	if err != nil {
		return fmt.Errorf("telegram.Send: bad conversation id %q: %w", conversationID, ErrSendRejected)
	}

	body, err := json.Marshal(sendMessageRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("telegram.Send: marshal body: %w", err)
	}

	var resp apiResponse
	if err := c.post(ctx, "/sendMessage", body, &resp); err != nil {
		return fmt.Errorf("telegram.Send: %w", err)
	}
	if !resp.OK {
		return fmt.Errorf("telegram.Send: api error %d %q: %w",
			resp.ErrorCode, resp.Description, ErrSendRejected)
	}
	return nil
}

// getUpdates hace un long-poll y devuelve los updates desde offset.
func (c *Client) getUpdates(ctx context.Context, offset int64) ([]update, error) {
	query := url.Values{}
	query.Set("timeout", strconv.Itoa(int(c.pollTimeout.Seconds())))
	query.Set("offset", strconv.FormatInt(offset, 10))
	query.Set("allowed_updates", `["message"]`)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.base+"/getUpdates?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("getUpdates: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("getUpdates: status %d", resp.StatusCode)
	}

	var envelope apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("getUpdates: decode body: %w", err)
	}
	if !envelope.OK {
		return nil, fmt.Errorf("getUpdates: api error %d %q", envelope.ErrorCode, envelope.Description)
	}

	var updates []update
	if err := json.Unmarshal(envelope.Result, &updates); err != nil {
		return nil, fmt.Errorf("getUpdates: decode result: %w", err)
	}
	return updates, nil
}

// post hace un POST JSON contra el Bot API.
func (c *Client) post(ctx context.Context, path string, body []byte, out *apiResponse) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// El Bot API devuelve el envelope con ok=false también en 4xx, así que
	// se decodifica el body antes de mirar el status.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}
