package telegram

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/alejandrodnm/solbot/internal/domain"
)

// errorBackoff es la espera tras un getUpdates fallido, para no martillear
// el API cuando la red está caída.
const errorBackoff = 3 * time.Second

// Listen arranca el loop de long-poll y devuelve el canal de comandos.
// Implementa ports.CommandSource. El canal se cierra al cancelar ctx.
func (c *Client) Listen(ctx context.Context) (<-chan domain.Command, error) {
	commands := make(chan domain.Command)

	go func() {
		defer close(commands)

		var offset int64
		for {
			if ctx.Err() != nil {
				return
			}

			updates, err := c.getUpdates(ctx, offset)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				slog.Warn("telegram poll failed", "err", err)
				select {
				case <-time.After(errorBackoff):
				case <-ctx.Done():
					return
				}
				continue
			}

			for _, u := range updates {
				if u.UpdateID >= offset {
					offset = u.UpdateID + 1
				}

				cmd, ok := mapUpdate(u)
				if !ok {
					continue
				}

				select {
				case commands <- cmd:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return commands, nil
}

// mapUpdate convierte un update de Telegram en un domain.Command.
// Descarta updates sin mensaje, sin texto, o enviados por otros bots.
func mapUpdate(u update) (domain.Command, bool) {
	msg := u.Message
	if msg == nil || msg.Text == "" {
		return domain.Command{}, false
	}
	if msg.From != nil && msg.From.IsBot {
		return domain.Command{}, false
	}

	senderID := ""
	if msg.From != nil {
		senderID = strconv.FormatInt(msg.From.ID, 10)
	}

	return domain.ParseCommand(
		msg.Text,
		strconv.FormatInt(msg.Chat.ID, 10),
		senderID,
	)
}
