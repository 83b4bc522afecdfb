package router_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alejandrodnm/solbot/internal/application/registry"
	"github.com/alejandrodnm/solbot/internal/application/router"
	"github.com/alejandrodnm/solbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	addr1 = "Vote111111111111111111111111111111111111111"
	addr2 = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
)

// --- fakes de los ports ---

type fakeBalances struct {
	balance domain.Balance
	err     error
	calls   int
	lastFor string
}

func (f *fakeBalances) FetchBalance(_ context.Context, addr domain.Address) (domain.Balance, error) {
	f.calls++
	f.lastFor = addr.String()
	return f.balance, f.err
}

type fakeTxs struct {
	sigs []domain.TransactionSignature
	err  error
}

func (f *fakeTxs) FetchRecentSignatures(_ context.Context, _ domain.Address, _ int) ([]domain.TransactionSignature, error) {
	return f.sigs, f.err
}

type fakePrices struct {
	quote  domain.PriceQuote
	err    error
	panics bool
}

func (f *fakePrices) FetchPrice(_ context.Context, pair string) (domain.PriceQuote, error) {
	if f.panics {
		panic("price provider exploded")
	}
	return f.quote, f.err
}

type deps struct {
	balances *fakeBalances
	txs      *fakeTxs
	prices   *fakePrices
	wallets  *registry.Registry
}

func newRouter(t *testing.T) (*router.Router, *deps) {
	t.Helper()
	d := &deps{
		balances: &fakeBalances{},
		txs:      &fakeTxs{},
		prices:   &fakePrices{},
		wallets:  registry.New(),
	}
	r := router.New(router.Config{}, d.balances, d.txs, d.prices, d.wallets)
	return r, d
}

func command(kind domain.Kind, name string, args ...string) domain.Command {
	return domain.Command{
		Kind:           kind,
		Name:           name,
		Args:           args,
		ConversationID: "chat-1",
		SenderID:       "user-1",
	}
}

func dispatch(t *testing.T, r *router.Router, cmd domain.Command) domain.OutboundMessage {
	t.Helper()
	out := r.Dispatch(context.Background(), cmd)
	require.Equal(t, "chat-1", out.ConversationID)
	require.NotEmpty(t, out.Text, "every branch must reply")
	return out
}

// --- comandos estáticos ---

func TestDispatch_Start(t *testing.T) {
	r, _ := newRouter(t)
	out := dispatch(t, r, command(domain.KindStart, "start"))
	assert.Contains(t, out.Text, "Welcome")
}

func TestDispatch_Help(t *testing.T) {
	r, _ := newRouter(t)
	out := dispatch(t, r, command(domain.KindHelp, "help"))
	assert.Contains(t, out.Text, "/wallet <public_key>")
	assert.Contains(t, out.Text, "/register <public_key>")
	assert.Contains(t, out.Text, "/monitor <public_key>")
}

func TestDispatch_Trade_Stub(t *testing.T) {
	r, d := newRouter(t)
	out := dispatch(t, r, command(domain.KindTrade, "trade"))
	assert.Contains(t, out.Text, "not implemented")
	assert.Zero(t, d.balances.calls)
	assert.Zero(t, d.wallets.Len())
}

func TestDispatch_Unknown_NeverPanics(t *testing.T) {
	r, _ := newRouter(t)
	for _, name := range []string{"send", "frobnicate", "", "PRICE"} {
		out := dispatch(t, r, command(domain.KindUnknown, name))
		assert.Contains(t, out.Text, "don't understand")
	}
}

// --- price ---

func TestDispatch_Price_TwoDecimals(t *testing.T) {
	r, d := newRouter(t)
	d.prices.quote = domain.PriceQuote{Pair: "SOL/USDC", Price: 147.2534, FetchedAt: time.Now()}

	out := dispatch(t, r, command(domain.KindPrice, "price"))
	assert.Equal(t, "SOL/USDC price: 147.25", out.Text)
}

func TestDispatch_Price_FailureSwallowed(t *testing.T) {
	r, d := newRouter(t)
	d.prices.err = errors.New("price feed unavailable")

	out := dispatch(t, r, command(domain.KindPrice, "price"))
	assert.Equal(t, "Error fetching price. Please try again later.", out.Text)
}

// --- wallet / balance ---

func TestDispatch_Wallet_Balance(t *testing.T) {
	r, d := newRouter(t)
	d.balances.balance = domain.Balance{Lamports: 2_500_000_000}

	out := dispatch(t, r, command(domain.KindWallet, "wallet", addr1))
	assert.Equal(t, "Wallet Balance: 2.5 SOL (2500000000 lamports)", out.Text)
	assert.Equal(t, addr1, d.balances.lastFor)
}

func TestDispatch_Wallet_Idempotent(t *testing.T) {
	r, d := newRouter(t)
	d.balances.balance = domain.Balance{Lamports: 2_500_000_000}

	first := dispatch(t, r, command(domain.KindWallet, "wallet", addr1))
	second := dispatch(t, r, command(domain.KindWallet, "wallet", addr1))
	assert.Equal(t, first.Text, second.Text)
}

func TestDispatch_Wallet_CollapsedFailureMessage(t *testing.T) {
	// Dirección inválida y fallo del RPC producen el MISMO copy de usuario.
	r, d := newRouter(t)

	invalid := dispatch(t, r, command(domain.KindWallet, "wallet", "not-an-address"))
	assert.Zero(t, d.balances.calls, "invalid address must not reach the RPC")

	d.balances.err = errors.New("rpc down")
	unavailable := dispatch(t, r, command(domain.KindWallet, "wallet", addr1))

	assert.Equal(t, invalid.Text, unavailable.Text)
	assert.Equal(t, "Error fetching balance. Please check the public key.", invalid.Text)
}

func TestDispatch_Wallet_NoArgUnregistered(t *testing.T) {
	r, d := newRouter(t)

	out := dispatch(t, r, command(domain.KindWallet, "wallet"))
	assert.Contains(t, out.Text, "Usage: /wallet")
	assert.Zero(t, d.balances.calls, "usage hint must not trigger I/O")
}

func TestDispatch_Wallet_NoArgResolvesRegistry(t *testing.T) {
	r, d := newRouter(t)
	d.balances.balance = domain.Balance{Lamports: 1_000_000_000}

	dispatch(t, r, command(domain.KindRegister, "register", addr2))
	out := dispatch(t, r, command(domain.KindWallet, "wallet"))

	assert.Equal(t, addr2, d.balances.lastFor)
	assert.Contains(t, out.Text, "1 SOL")
}

// --- register ---

func TestDispatch_Register_ThenLookup(t *testing.T) {
	r, d := newRouter(t)

	out := dispatch(t, r, command(domain.KindRegister, "register", addr1))
	assert.Equal(t, "Wallet registered: "+addr1, out.Text)

	got, ok := d.wallets.Lookup("user-1")
	require.True(t, ok)
	assert.Equal(t, addr1, got.String())
}

func TestDispatch_Register_LastWriteWins(t *testing.T) {
	r, d := newRouter(t)

	dispatch(t, r, command(domain.KindRegister, "register", addr1))
	dispatch(t, r, command(domain.KindRegister, "register", addr2))

	got, ok := d.wallets.Lookup("user-1")
	require.True(t, ok)
	assert.Equal(t, addr2, got.String())
}

func TestDispatch_Register_InvalidNoMutation(t *testing.T) {
	r, d := newRouter(t)

	out := dispatch(t, r, command(domain.KindRegister, "register", "zzz"))
	assert.Contains(t, out.Text, "valid Solana address")
	assert.Zero(t, d.wallets.Len(), "failed validation must not mutate the registry")
}

func TestDispatch_Register_MissingArg(t *testing.T) {
	r, _ := newRouter(t)
	out := dispatch(t, r, command(domain.KindRegister, "register"))
	assert.Contains(t, out.Text, "Usage: /register")
}

// --- monitor ---

func TestDispatch_Monitor_ListsSignatures(t *testing.T) {
	r, d := newRouter(t)
	d.txs.sigs = []domain.TransactionSignature{
		{Signature: "5sig1", Slot: 100},
		{Signature: "5sig2", Slot: 99, Failed: true},
	}

	out := dispatch(t, r, command(domain.KindMonitor, "monitor", addr1))
	assert.Contains(t, out.Text, "Recent transactions for wallet "+addr1)
	assert.Contains(t, out.Text, "TxID: 5sig1")
	assert.Contains(t, out.Text, "TxID: 5sig2 (failed)")
}

func TestDispatch_Monitor_EmptyIsNotAnError(t *testing.T) {
	r, _ := newRouter(t)
	out := dispatch(t, r, command(domain.KindMonitor, "monitor", addr1))
	assert.Equal(t, "No recent transactions found for this wallet.", out.Text)
}

func TestDispatch_Monitor_Failure(t *testing.T) {
	r, d := newRouter(t)
	d.txs.err = errors.New("rpc down")
	out := dispatch(t, r, command(domain.KindMonitor, "monitor", addr1))
	assert.Equal(t, "Error monitoring transactions. Please check the public key.", out.Text)
}

func TestDispatch_Monitor_MissingArg(t *testing.T) {
	r, _ := newRouter(t)
	out := dispatch(t, r, command(domain.KindMonitor, "monitor"))
	assert.Contains(t, out.Text, "Usage: /monitor")
}

// --- aislamiento de fallos ---

func TestDispatch_RecoversPanics(t *testing.T) {
	r, d := newRouter(t)
	d.prices.panics = true

	out := dispatch(t, r, command(domain.KindPrice, "price"))
	assert.Contains(t, out.Text, "Something went wrong")

	// El siguiente comando sigue funcionando con normalidad.
	next := dispatch(t, r, command(domain.KindHelp, "help"))
	assert.Contains(t, next.Text, "Available commands")
}
