package notify_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/alejandrodnm/solbot/internal/adapters/notify"
	"github.com/alejandrodnm/solbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsole_Listen(t *testing.T) {
	in := strings.NewReader("/wallet abc\n\nprice\nnot-a-command args\n")
	c := notify.NewConsoleWriter(in, &bytes.Buffer{}, false)

	commands, err := c.Listen(context.Background())
	require.NoError(t, err)

	var got []domain.Command
	for cmd := range commands {
		got = append(got, cmd)
	}

	require.Len(t, got, 3) // la línea vacía se descarta
	assert.Equal(t, domain.KindWallet, got[0].Kind)
	assert.Equal(t, []string{"abc"}, got[0].Args)
	assert.Equal(t, domain.KindPrice, got[1].Kind)
	assert.Equal(t, domain.KindUnknown, got[2].Kind)

	// Toda la sesión es una única conversación.
	assert.Equal(t, c.ConversationID(), got[0].ConversationID)
	assert.Equal(t, got[0].ConversationID, got[1].ConversationID)
}

// blockedReader simula un stdin sin input: Read bloquea hasta que se
// desbloquea explícitamente.
type blockedReader struct {
	unblock chan struct{}
}

func (r *blockedReader) Read(p []byte) (int, error) {
	<-r.unblock
	return 0, io.EOF
}

func TestConsole_Listen_ClosesOnContextCancel(t *testing.T) {
	in := &blockedReader{unblock: make(chan struct{})}
	defer close(in.unblock)

	c := notify.NewConsoleWriter(in, &bytes.Buffer{}, false)

	ctx, cancel := context.WithCancel(context.Background())
	commands, err := c.Listen(ctx)
	require.NoError(t, err)

	cancel()

	// Sin esto, el shutdown por señal se quedaría colgado esperando EOF.
	select {
	case _, ok := <-commands:
		assert.False(t, ok, "expected a closed channel, got a command")
	case <-time.After(2 * time.Second):
		t.Fatal("command channel still open after context cancel")
	}
}

func TestConsole_Send_Plain(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(strings.NewReader(""), &buf, false)

	err := c.Send(context.Background(), c.ConversationID(), "Wallet Balance: 2.5 SOL")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Wallet Balance: 2.5 SOL")
}

func TestConsole_Send_Table(t *testing.T) {
	var buf bytes.Buffer
	c := notify.NewConsoleWriter(strings.NewReader(""), &buf, true)

	err := c.Send(context.Background(), c.ConversationID(), "line one\nline two")
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "line one")
	assert.Contains(t, out, "line two")
	assert.Contains(t, out, time.Now().Format("15:04")) // timestamp en la primera fila
}
