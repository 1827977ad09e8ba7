package authz

import (
	"context"

	"bloghub/internal/domain"
)

type contextKey int

const principalKey contextKey = iota

// WithPrincipal anexa a identidade autenticada ao contexto.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext recupera a identidade anexada pelo middleware de autorização.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	return p, ok
}
