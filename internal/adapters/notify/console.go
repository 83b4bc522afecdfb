package notify

// console.go — transporte local para desarrollo.
//
// Hace de chat-transport completo sin red ni token: lee comandos de stdin
// (con o sin "/") y escribe las respuestas en stdout. La sesión entera es
// una única conversación con un ID generado al arrancar, así que el wallet
// registry y el scheduler funcionan igual que contra Telegram.

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"github.com/alejandrodnm/solbot/internal/domain"
)

// Console implementa ports.Messenger y ports.CommandSource sobre stdin/stdout.
type Console struct {
	in    io.Reader
	out   io.Writer
	mu    sync.Mutex // serializa los Send de comandos concurrentes
	table bool
	// conversationID identifica la sesión; también hace de SenderID.
	conversationID string
}

// NewConsole crea un transporte de consola sobre stdin/stdout.
func NewConsole(table bool) *Console {
	return newConsole(os.Stdin, os.Stdout, table)
}

// NewConsoleWriter crea un transporte de consola para tests.
func NewConsoleWriter(in io.Reader, out io.Writer, table bool) *Console {
	return newConsole(in, out, table)
}

func newConsole(in io.Reader, out io.Writer, table bool) *Console {
	return &Console{
		in:             in,
		out:            out,
		table:          table,
		conversationID: uuid.NewString(),
	}
}

// ConversationID devuelve el ID de la sesión, para dirigirle notificaciones.
func (c *Console) ConversationID() string {
	return c.conversationID
}

// Listen lee líneas de stdin y las entrega como comandos.
// El canal se cierra en EOF o al cancelar ctx.
//
// scanner.Scan bloquea sin mirar ctx, así que el reader bombea las líneas
// crudas por un canal intermedio y el forwarding atiende la cancelación:
// el canal de comandos se cierra aunque stdin siga abierto. El goroutine
// del reader puede quedar bloqueado en Scan hasta el EOF del proceso.
func (c *Console) Listen(ctx context.Context) (<-chan domain.Command, error) {
	commands := make(chan domain.Command)

	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		defer close(commands)
		for {
			var line string
			select {
			case <-ctx.Done():
				return
			case l, ok := <-lines:
				if !ok {
					return
				}
				line = l
			}

			cmd, ok := domain.ParseCommand(line, c.conversationID, c.conversationID)
			if !ok {
				continue
			}
			select {
			case commands <- cmd:
			case <-ctx.Done():
				return
			}
		}
	}()

	return commands, nil
}

// Send imprime la respuesta en stdout. Implementa ports.Messenger.
func (c *Console) Send(_ context.Context, _ string, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.table {
		c.printTable(text)
		return nil
	}

	now := time.Now().Format("15:04:05")
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintf(c.out, "[%s] %s\n", now, line)
	}
	return nil
}

// printTable enmarca la respuesta en una tabla, una fila por línea.
func (c *Console) printTable(text string) {
	table := tablewriter.NewWriter(c.out)
	table.Header("Time", "Reply")

	now := time.Now().Format("15:04:05")
	for i, line := range strings.Split(text, "\n") {
		stamp := now
		if i > 0 {
			stamp = ""
		}
		table.Append(stamp, line)
	}

	table.Render()
}
