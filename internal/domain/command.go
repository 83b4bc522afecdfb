package domain

import "strings"

// Kind identifica un comando reconocido por el bot.
// El set es cerrado: añadir un comando nuevo implica añadir una constante
// aquí y un arm en el switch del router — el compilador no deja olvidarlo.
type Kind int

const (
	KindUnknown Kind = iota
	KindStart
	KindHelp
	KindPrice
	KindWallet
	KindRegister
	KindMonitor
	KindTrade
)

// String devuelve el nombre canónico del comando.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindHelp:
		return "help"
	case KindPrice:
		return "price"
	case KindWallet:
		return "wallet"
	case KindRegister:
		return "register"
	case KindMonitor:
		return "monitor"
	case KindTrade:
		return "trade"
	default:
		return "unknown"
	}
}

// KindOf mapea el primer token de un mensaje a su Kind.
// El matching es case-sensitive y exacto; "balance" es alias de "wallet".
func KindOf(name string) Kind {
	switch name {
	case "start":
		return KindStart
	case "help":
		return KindHelp
	case "price":
		return KindPrice
	case "wallet", "balance":
		return KindWallet
	case "register":
		return KindRegister
	case "monitor":
		return KindMonitor
	case "trade":
		return KindTrade
	default:
		return KindUnknown
	}
}

// Command es un comando entrante ya parseado. Inmutable: se crea por mensaje
// recibido y se descarta cuando el router envía la respuesta.
type Command struct {
	Kind Kind
	// Name es el primer token tal como llegó (sin "/" ni sufijo "@bot").
	Name string
	// Args son los tokens restantes del mensaje, en orden.
	Args []string
	// ConversationID identifica el chat al que responder. Opaco para el core.
	ConversationID string
	// SenderID identifica al usuario que envió el comando; es la key del
	// wallet registry. En chats privados coincide con ConversationID.
	SenderID string
}

// ParseCommand convierte el texto de un mensaje en un Command.
// El primer token es el nombre ("/wallet abc" y "wallet abc" son equivalentes);
// el sufijo "@nombre_del_bot" que Telegram añade en grupos se descarta.
// Devuelve ok=false si el texto no contiene ningún token.
func ParseCommand(text, conversationID, senderID string) (Command, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}, false
	}

	name := strings.TrimPrefix(fields[0], "/")
	if at := strings.IndexByte(name, '@'); at >= 0 {
		name = name[:at]
	}
	if name == "" {
		return Command{}, false
	}

	return Command{
		Kind:           KindOf(name),
		Name:           name,
		Args:           fields[1:],
		ConversationID: conversationID,
		SenderID:       senderID,
	}, true
}

// OutboundMessage es la respuesta que el router produce para cada comando.
type OutboundMessage struct {
	ConversationID string
	Text           string
}
