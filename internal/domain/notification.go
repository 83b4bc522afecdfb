package domain

import "time"

// NotificationEvent es un mensaje no solicitado programado en el tiempo.
// Se crea al agendar, se consume exactamente una vez al dispararse (o
// periódicamente si Every > 0) y se descarta.
type NotificationEvent struct {
	TargetConversationID string
	Message              string
	FireAt               time.Time
	// Every re-arma el timer tras cada disparo. Cero = one-shot.
	Every time.Duration
}
