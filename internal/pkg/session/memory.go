package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"bloghub/internal/domain"
)

type memoryEntry struct {
	principal domain.Principal
	expiresAt time.Time
}

// MemoryStore mantém as sessões num mapa local. Usado com SESSION_STORE=memory e nos testes.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore cria um Store em memória.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *MemoryStore) Lookup(_ context.Context, id string) (domain.Principal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return domain.Principal{}, ErrSessionNotFound
	}
	if !s.now().Before(entry.expiresAt) {
		delete(s.sessions, id)
		return domain.Principal{}, ErrSessionNotFound
	}
	if entry.principal.UserID == 0 {
		return domain.Principal{}, ErrNoIdentity
	}
	return entry.principal, nil
}

func (s *MemoryStore) Create(_ context.Context, principal domain.Principal) (string, error) {
	id := uuid.NewString()

	s.mu.Lock()
	s.sessions[id] = memoryEntry{principal: principal, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return id, nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
