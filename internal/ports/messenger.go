package ports

import "context"

// Messenger entrega texto a una conversación a través del chat-transport.
type Messenger interface {
	// Send es fire-and-forget desde la perspectiva del caller: un error
	// significa que el transporte rechazó el envío, y el caller decide si
	// loguearlo — nunca se reintenta.
	Send(ctx context.Context, conversationID, text string) error
}
