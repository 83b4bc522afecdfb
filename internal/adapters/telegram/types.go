package telegram

import "encoding/json"

// DTOs raw del Bot API de Telegram. Solo los campos que el bot consume.

// apiResponse es el envelope estándar de todas las respuestas del Bot API.
type apiResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	Description string          `json:"description"`
	ErrorCode   int             `json:"error_code"`
}

// update es un elemento del result de getUpdates.
type update struct {
	UpdateID int64    `json:"update_id"`
	Message  *message `json:"message"`
}

// message es un mensaje entrante.
type message struct {
	MessageID int64  `json:"message_id"`
	From      *user  `json:"from"`
	Chat      chat   `json:"chat"`
	Text      string `json:"text"`
}

// user es el remitente del mensaje.
type user struct {
	ID    int64 `json:"id"`
	IsBot bool  `json:"is_bot"`
}

// chat es la conversación de origen.
type chat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// sendMessageRequest es el body de POST sendMessage.
type sendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}
