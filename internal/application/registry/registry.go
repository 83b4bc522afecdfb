package registry

import (
	"sync"

	"github.com/alejandrodnm/solbot/internal/domain"
)

// Registry es el wallet registry en memoria: ownerID → dirección registrada.
// Es el único estado mutable compartido del bot. Vive lo que vive el proceso
// y nunca persiste — limitación aceptada del diseño. El RWMutex garantiza la
// atomicidad de Register/Lookup con un goroutine por comando en vuelo.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]domain.WalletEntry
}

// New crea un Registry vacío.
func New() *Registry {
	return &Registry{entries: make(map[string]domain.WalletEntry)}
}

// Register inserta o sobreescribe la entrada del owner. Last write wins.
func (r *Registry) Register(ownerID string, addr domain.Address) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[ownerID] = domain.WalletEntry{OwnerID: ownerID, Address: addr}
}

// Lookup devuelve la dirección registrada del owner.
// Un miss es ok=false: "no registrado" es un resultado normal, no un error.
func (r *Registry) Lookup(ownerID string) (domain.Address, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[ownerID]
	return entry.Address, ok
}

// Len devuelve el número de owners registrados.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
