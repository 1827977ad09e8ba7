package middleware

import (
	"context"
	"net/http"

	"bloghub/internal/api/response"
	"bloghub/internal/authz"
	apperror "bloghub/internal/errors"
	"bloghub/internal/pkg/logger"
)

// SessionHeader é usado quando o cliente não envia o cookie de sessão.
const SessionHeader = "X-Session-ID"

const (
	msgUnauthenticated = "Unauthorized: Please log in to access this resource."
	msgForbidden       = "You do not have permission to perform this action."
)

// Authorizer é o contrato que o middleware espera do gate.
type Authorizer interface {
	Authorize(ctx context.Context, method, path, sessionID string) authz.Decision
}

// SessionID extrai o id de sessão do cookie ou, na falta dele, do header X-Session-ID.
func SessionID(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	return r.Header.Get(SessionHeader)
}

// NewAuthMiddleware consulta o gate antes de cada requisição e anexa a identidade ao contexto.
func NewAuthMiddleware(gate Authorizer, cookieName string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			d := gate.Authorize(r.Context(), r.Method, r.URL.Path, SessionID(r, cookieName))

			switch d.Outcome {
			case authz.Unauthenticated:
				response.Error(w, r, log, apperror.NewUnauthorizedError(msgUnauthenticated))
				return
			case authz.Forbidden:
				response.Error(w, r, log, apperror.NewForbiddenError(msgForbidden))
				return
			}

			if d.Principal != nil {
				r = r.WithContext(authz.WithPrincipal(r.Context(), *d.Principal))
			}
			next.ServeHTTP(w, r)
		})
	}
}
