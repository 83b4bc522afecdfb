package telegram_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alejandrodnm/solbot/internal/adapters/telegram"
	"github.com/alejandrodnm/solbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend_Success(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/sendMessage", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		fmt.Fprint(w, `{"ok":true,"result":{"message_id":99}}`)
	}))
	defer srv.Close()

	client := telegram.NewClient("test-token", srv.URL, time.Second)
	err := client.Send(context.Background(), "12345", "Wallet Balance: 2.5 SOL")

	require.NoError(t, err)
	assert.Equal(t, float64(12345), got["chat_id"])
	assert.Equal(t, "Wallet Balance: 2.5 SOL", got["text"])
}

func TestSend_APIRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"ok":false,"error_code":403,"description":"Forbidden: bot was blocked by the user"}`)
	}))
	defer srv.Close()

	client := telegram.NewClient("test-token", srv.URL, time.Second)
	err := client.Send(context.Background(), "12345", "hi")
	assert.ErrorIs(t, err, telegram.ErrSendRejected)
}

func TestSend_BadConversationID(t *testing.T) {
	client := telegram.NewClient("test-token", "http://unused.invalid", time.Second)
	err := client.Send(context.Background(), "not-a-chat-id", "hi")
	assert.ErrorIs(t, err, telegram.ErrSendRejected)
}

func TestListen_MapsUpdatesToCommands(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getUpdates", r.URL.Path)

		// Primera llamada: un update con comando. Después: vacío.
		if calls.Add(1) == 1 {
			fmt.Fprint(w, `{"ok":true,"result":[
				{"update_id":700,"message":{"message_id":1,"from":{"id":42,"is_bot":false},"chat":{"id":-100,"type":"group"},"text":"/wallet abc123"}},
				{"update_id":701,"message":{"message_id":2,"from":{"id":43,"is_bot":true},"chat":{"id":-100,"type":"group"},"text":"/price"}},
				{"update_id":702,"message":{"message_id":3,"chat":{"id":-100,"type":"group"},"text":""}}
			]}`)
			return
		}
		assert.Equal(t, "703", r.URL.Query().Get("offset"))
		fmt.Fprint(w, `{"ok":true,"result":[]}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := telegram.NewClient("test-token", srv.URL, 100*time.Millisecond)
	commands, err := client.Listen(ctx)
	require.NoError(t, err)

	// Solo el mensaje humano con texto llega como comando.
	select {
	case cmd := <-commands:
		assert.Equal(t, domain.KindWallet, cmd.Kind)
		assert.Equal(t, []string{"abc123"}, cmd.Args)
		assert.Equal(t, "-100", cmd.ConversationID)
		assert.Equal(t, "42", cmd.SenderID)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a command before timeout")
	}

	cancel()
	for range commands {
		t.Fatal("no more commands expected")
	}
}

func TestListen_SurvivesPollErrors(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		fmt.Fprint(w, `{"ok":true,"result":[
			{"update_id":1,"message":{"message_id":1,"from":{"id":7},"chat":{"id":7,"type":"private"},"text":"/help"}}
		]}`)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := telegram.NewClient("test-token", srv.URL, 100*time.Millisecond)
	commands, err := client.Listen(ctx)
	require.NoError(t, err)

	select {
	case cmd := <-commands:
		assert.Equal(t, domain.KindHelp, cmd.Kind)
	case <-time.After(10 * time.Second):
		t.Fatal("poll loop should recover after a failed request")
	}
}
