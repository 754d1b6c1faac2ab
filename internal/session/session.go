package session

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// StorageKey is the local storage slot holding the session identifier.
const StorageKey = "user_session_id"

// Provider hands out the pseudo-anonymous identifier that scopes likes to a device.
// It is not a credential and is never validated server side.
type Provider interface {
	GetOrCreateSessionID() (string, error)
}

// StorageProvider keeps the identifier in a Storage, creating it on first use.
type StorageProvider struct {
	storage Storage
	clock   clockwork.Clock
	mu      sync.Mutex
}

func NewProvider(storage Storage, clock clockwork.Clock) *StorageProvider {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &StorageProvider{
		storage: storage,
		clock:   clock,
	}
}

var _ Provider = (*StorageProvider)(nil)

func (p *StorageProvider) GetOrCreateSessionID() (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id, ok, err := p.storage.Get(StorageKey)
	if err != nil {
		return "", fmt.Errorf("failed to read session id: %w", err)
	}
	if ok && id != "" {
		return id, nil
	}

	id = NewID(p.clock.Now())
	if err := p.storage.Set(StorageKey, id); err != nil {
		return "", fmt.Errorf("failed to store session id: %w", err)
	}

	return id, nil
}

// NewID builds session_<unix millis>_<12 random hex chars>.
func NewID(now time.Time) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("session_%d_%s", now.UnixMilli(), random[:12])
}

// Static always returns the same identifier.
type Static string

func (s Static) GetOrCreateSessionID() (string, error) {
	return string(s), nil
}
