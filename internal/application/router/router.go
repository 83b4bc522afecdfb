package router

// router.go — dispatch de comandos.
//
// Invariante central: Dispatch produce exactamente UNA respuesta para
// cualquier Command, pase lo que pase. Los errores de los providers se
// tragan aquí convertidos en copy de usuario, y un panic en un handler se
// recupera sin tirar el proceso — un comando roto nunca afecta al siguiente.

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alejandrodnm/solbot/internal/domain"
	"github.com/alejandrodnm/solbot/internal/ports"
)

const (
	defaultPair           = "SOL/USDC"
	defaultSignatureLimit = 5
)

// Config controla el comportamiento del router.
type Config struct {
	// DefaultPair es el único par que el comando /price consulta.
	DefaultPair string
	// SignatureLimit es cuántas firmas lista /monitor.
	SignatureLimit int
}

// Router mapea comandos entrantes a los providers y formatea la respuesta.
type Router struct {
	cfg      Config
	balances ports.BalanceProvider
	txs      ports.TransactionProvider
	prices   ports.PriceProvider
	wallets  ports.WalletStore
}

// New crea un Router con todas las dependencias inyectadas.
func New(
	cfg Config,
	balances ports.BalanceProvider,
	txs ports.TransactionProvider,
	prices ports.PriceProvider,
	wallets ports.WalletStore,
) *Router {
	if cfg.DefaultPair == "" {
		cfg.DefaultPair = defaultPair
	}
	if cfg.SignatureLimit <= 0 {
		cfg.SignatureLimit = defaultSignatureLimit
	}
	return &Router{
		cfg:      cfg,
		balances: balances,
		txs:      txs,
		prices:   prices,
		wallets:  wallets,
	}
}

// Dispatch maneja un comando y devuelve la respuesta a enviar.
func (r *Router) Dispatch(ctx context.Context, cmd domain.Command) (out domain.OutboundMessage) {
	cmdID := uuid.NewString()
	out = domain.OutboundMessage{ConversationID: cmd.ConversationID}

	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("command handler panicked",
				"cmd_id", cmdID,
				"command", cmd.Name,
				"panic", rec,
			)
			out.Text = replyInternal
		}
	}()

	slog.Debug("dispatching command",
		"cmd_id", cmdID,
		"command", cmd.Name,
		"args", len(cmd.Args),
		"conversation", cmd.ConversationID,
	)

	switch cmd.Kind {
	case domain.KindStart:
		out.Text = replyWelcome
	case domain.KindHelp:
		out.Text = replyHelp
	case domain.KindPrice:
		out.Text = r.handlePrice(ctx, cmdID)
	case domain.KindWallet:
		out.Text = r.handleWallet(ctx, cmdID, cmd)
	case domain.KindRegister:
		out.Text = r.handleRegister(cmdID, cmd)
	case domain.KindMonitor:
		out.Text = r.handleMonitor(ctx, cmdID, cmd)
	case domain.KindTrade:
		// Placeholder deliberado: sin I/O, sin estado.
		out.Text = replyTradeStub
	default:
		out.Text = replyUnknown
	}
	return out
}

// handlePrice consulta el par configurado y formatea a dos decimales.
func (r *Router) handlePrice(ctx context.Context, cmdID string) string {
	quote, err := r.prices.FetchPrice(ctx, r.cfg.DefaultPair)
	if err != nil {
		slog.Warn("price fetch failed", "cmd_id", cmdID, "pair", r.cfg.DefaultPair, "err", err)
		return replyPriceFailed
	}
	return formatPrice(quote)
}

// handleWallet resuelve la dirección (argumento o registry) y consulta el
// balance. Dirección inválida y fallo del RPC colapsan en el mismo mensaje;
// internamente las causas quedan separadas en los logs.
func (r *Router) handleWallet(ctx context.Context, cmdID string, cmd domain.Command) string {
	var addr domain.Address

	if len(cmd.Args) > 0 {
		a, err := domain.ParseAddress(cmd.Args[0])
		if err != nil {
			slog.Info("wallet: invalid address", "cmd_id", cmdID, "err", err)
			return replyBalanceFailed
		}
		addr = a
	} else {
		a, ok := r.wallets.Lookup(cmd.SenderID)
		if !ok {
			// Sin argumento y sin registro: hint de uso, sin tocar el RPC.
			return replyWalletUsage
		}
		addr = a
	}

	balance, err := r.balances.FetchBalance(ctx, addr)
	if err != nil {
		slog.Warn("wallet: balance fetch failed", "cmd_id", cmdID, "address", addr.String(), "err", err)
		return replyBalanceFailed
	}
	return formatBalance(balance)
}

// handleRegister valida y guarda la dirección del remitente.
func (r *Router) handleRegister(cmdID string, cmd domain.Command) string {
	if len(cmd.Args) == 0 {
		return replyRegisterUsage
	}

	addr, err := domain.ParseAddress(cmd.Args[0])
	if err != nil {
		// Validación fallida: se responde y el registry no se toca.
		slog.Info("register: invalid address", "cmd_id", cmdID, "err", err)
		return replyInvalidAddress
	}

	r.wallets.Register(cmd.SenderID, addr)
	slog.Info("wallet registered", "cmd_id", cmdID, "owner", cmd.SenderID, "address", addr.String())
	return formatRegistered(addr)
}

// handleMonitor lista las firmas confirmadas más recientes de la dirección.
func (r *Router) handleMonitor(ctx context.Context, cmdID string, cmd domain.Command) string {
	if len(cmd.Args) == 0 {
		return replyMonitorUsage
	}

	addr, err := domain.ParseAddress(cmd.Args[0])
	if err != nil {
		slog.Info("monitor: invalid address", "cmd_id", cmdID, "err", err)
		return replyMonitorFailed
	}

	sigs, err := r.txs.FetchRecentSignatures(ctx, addr, r.cfg.SignatureLimit)
	if err != nil {
		slog.Warn("monitor: signature fetch failed", "cmd_id", cmdID, "address", addr.String(), "err", err)
		return replyMonitorFailed
	}
	if len(sigs) == 0 {
		return replyNoTransactions
	}
	return formatSignatures(addr, sigs)
}
