package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"bloghub/internal/domain"
	"bloghub/internal/pkg/cache"
)

const (
	keyPrefix   = "session:"
	fieldUserID = "userId"
	fieldRole   = "role"
)

// RedisStore guarda cada sessão como um hash "session:<id>" com TTL.
type RedisStore struct {
	client cache.Client
	ttl    time.Duration
}

// NewRedisStore cria um Store sobre o cliente de cache.
func NewRedisStore(client cache.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(id string) string {
	return keyPrefix + id
}

// Lookup lê o hash da sessão. Um hash vazio significa sessão inexistente ou expirada.
func (s *RedisStore) Lookup(ctx context.Context, id string) (domain.Principal, error) {
	if id == "" {
		return domain.Principal{}, ErrSessionNotFound
	}

	values, err := s.client.HGetAll(ctx, key(id))
	if err != nil {
		return domain.Principal{}, fmt.Errorf("falha ao ler sessão: %w", err)
	}
	if len(values) == 0 {
		return domain.Principal{}, ErrSessionNotFound
	}

	raw, ok := values[fieldUserID]
	if !ok || raw == "" {
		return domain.Principal{}, ErrNoIdentity
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return domain.Principal{}, ErrNoIdentity
	}

	return domain.Principal{UserID: userID, Role: domain.Role(values[fieldRole])}, nil
}

// Create grava uma nova sessão com um id uuid v4.
func (s *RedisStore) Create(ctx context.Context, principal domain.Principal) (string, error) {
	id := uuid.NewString()

	err := s.client.HSet(ctx, key(id), map[string]interface{}{
		fieldUserID: strconv.FormatInt(principal.UserID, 10),
		fieldRole:   string(principal.Role),
	})
	if err != nil {
		return "", fmt.Errorf("falha ao gravar sessão: %w", err)
	}
	if err := s.client.Expire(ctx, key(id), s.ttl); err != nil {
		// Sem TTL a sessão nunca expiraria.
		_ = s.client.Delete(ctx, key(id))
		return "", fmt.Errorf("falha ao definir expiração da sessão: %w", err)
	}
	return id, nil
}

// Delete remove a sessão. Remover uma sessão inexistente não é erro.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.client.Delete(ctx, key(id)); err != nil {
		return fmt.Errorf("falha ao remover sessão: %w", err)
	}
	return nil
}
