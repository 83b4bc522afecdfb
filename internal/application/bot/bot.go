package bot

// bot.go — loop principal: source → router → messenger.
//
// Un goroutine por comando en vuelo: las respuestas salen según termina el
// I/O de cada comando, sin orden garantizado entre comandos distintos. El
// único estado compartido (wallet registry) va protegido dentro del router.

import (
	"context"
	"log/slog"
	"sync"

	"github.com/alejandrodnm/solbot/internal/application/router"
	"github.com/alejandrodnm/solbot/internal/domain"
	"github.com/alejandrodnm/solbot/internal/ports"
)

// Bot conecta el chat-transport con el router de comandos.
type Bot struct {
	source    ports.CommandSource
	router    *router.Router
	messenger ports.Messenger
}

// New crea un Bot con todas las dependencias inyectadas.
func New(source ports.CommandSource, r *router.Router, messenger ports.Messenger) *Bot {
	return &Bot{source: source, router: r, messenger: messenger}
}

// Run consume comandos hasta que el source se agote o ctx se cancele.
// Espera a que los comandos en vuelo terminen antes de devolver.
func (b *Bot) Run(ctx context.Context) error {
	commands, err := b.source.Listen(ctx)
	if err != nil {
		return err
	}

	slog.Info("bot listening")

	var wg sync.WaitGroup
	for cmd := range commands {
		wg.Add(1)
		go func(cmd domain.Command) {
			defer wg.Done()
			b.handle(ctx, cmd)
		}(cmd)
	}

	wg.Wait()
	slog.Info("bot stopped")
	return nil
}

// handle despacha un comando y envía la respuesta. El error de envío se
// loguea y nada más: fire-and-forget hacia el transporte.
func (b *Bot) handle(ctx context.Context, cmd domain.Command) {
	out := b.router.Dispatch(ctx, cmd)
	if out.Text == "" {
		return
	}
	if err := b.messenger.Send(ctx, out.ConversationID, out.Text); err != nil {
		slog.Warn("reply delivery failed",
			"command", cmd.Name,
			"conversation", out.ConversationID,
			"err", err,
		)
	}
}
