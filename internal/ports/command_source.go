package ports

import (
	"context"

	"github.com/alejandrodnm/solbot/internal/domain"
)

// CommandSource entrega los comandos entrantes del chat-transport.
type CommandSource interface {
	// Listen arranca la recepción y devuelve el canal de comandos.
	// El canal se cierra cuando ctx se cancela o el transporte termina.
	Listen(ctx context.Context) (<-chan domain.Command, error)
}
