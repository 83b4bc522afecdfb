package router

// replies.go — todo el copy que ve el usuario.
//
// Política de errores (ver handler por handler en router.go): ningún error
// crudo llega al chat. Cada fallo se convierte en un mensaje corto que nombra
// la acción que falló; la causa real queda en los logs.

import (
	"fmt"
	"strings"

	"github.com/alejandrodnm/solbot/internal/domain"
)

const (
	replyWelcome = "Welcome to the Solana bot! Use /help to see available commands."

	replyHelp = "Available commands:\n" +
		"/price - Get the current SOL/USDC price\n" +
		"/wallet <public_key> - Get wallet balance (alias: /balance)\n" +
		"/register <public_key> - Register your wallet\n" +
		"/monitor <public_key> - List recent transactions for a wallet\n" +
		"/trade - Trade SOL (not available yet)\n" +
		"/help - Show this message"

	// Mensaje único para dirección inválida Y para fallo del RPC: el usuario
	// no distingue las causas, los logs sí.
	replyBalanceFailed = "Error fetching balance. Please check the public key."

	replyWalletUsage = "Please provide a public key or register one with /register. Usage: /wallet <public_key>"

	replyPriceFailed = "Error fetching price. Please try again later."

	replyRegisterUsage  = "Please provide a public key. Usage: /register <public_key>"
	replyInvalidAddress = "That doesn't look like a valid Solana address. Please check it and try again."

	replyMonitorUsage   = "Please provide a public key. Usage: /monitor <public_key>"
	replyMonitorFailed  = "Error monitoring transactions. Please check the public key."
	replyNoTransactions = "No recent transactions found for this wallet."

	replyTradeStub = "Trading is not implemented yet. Stay tuned!"

	replyUnknown = "Sorry, I don't understand that command. Use /help for instructions."

	replyInternal = "Something went wrong handling that command. Please try again."
)

// formatBalance muestra el decimal en SOL junto al entero exacto en lamports:
// el redondeo nunca oculta precisión.
func formatBalance(b domain.Balance) string {
	return fmt.Sprintf("Wallet Balance: %s SOL (%d lamports)", b.FormatSOL(), b.Lamports)
}

// formatPrice muestra la cotización a dos decimales.
func formatPrice(q domain.PriceQuote) string {
	return fmt.Sprintf("%s price: %.2f", q.Pair, q.Price)
}

// formatRegistered confirma el registro con la forma canónica de la dirección.
func formatRegistered(addr domain.Address) string {
	return fmt.Sprintf("Wallet registered: %s", addr)
}

// formatSignatures lista las firmas recientes, una por línea.
func formatSignatures(addr domain.Address, sigs []domain.TransactionSignature) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Recent transactions for wallet %s:", addr)
	for _, s := range sigs {
		sb.WriteString("\nTxID: ")
		sb.WriteString(s.Signature)
		if s.Failed {
			sb.WriteString(" (failed)")
		}
	}
	return sb.String()
}
