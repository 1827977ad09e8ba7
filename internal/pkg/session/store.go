package session

import (
	"context"
	"errors"

	"bloghub/internal/domain"
)

var (
	// ErrSessionNotFound indica um id desconhecido ou uma sessão expirada.
	ErrSessionNotFound = errors.New("session not found")
	// ErrNoIdentity indica uma sessão existente que não carrega usuário.
	ErrNoIdentity = errors.New("session has no user identity")
)

// Store resolve ids de sessão opacos para a identidade autenticada.
// As implementações devem ser seguras para uso concorrente.
type Store interface {
	Lookup(ctx context.Context, id string) (domain.Principal, error)
	Create(ctx context.Context, principal domain.Principal) (string, error)
	Delete(ctx context.Context, id string) error
}
