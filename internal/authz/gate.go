// Package authz decide, para cada requisição, se ela segue, se falta autenticação
// ou se falta permissão.
package authz

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"bloghub/internal/domain"
	"bloghub/internal/pkg/logger"
	"bloghub/internal/pkg/session"
)

// Outcome é o resultado de uma decisão de autorização.
type Outcome int

const (
	Allow Outcome = iota
	Unauthenticated
	Forbidden
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Decision carrega o resultado e, quando houve autenticação, a identidade resolvida.
type Decision struct {
	Outcome   Outcome
	Principal *domain.Principal
}

// Gate avalia as regras de acesso contra a sessão da requisição.
type Gate struct {
	sessions session.Store
	rules    []Rule
	logger   logger.Logger
}

// NewGate cria o gate. As regras são avaliadas em ordem; a primeira que casar decide.
func NewGate(sessions session.Store, rules []Rule, log logger.Logger) *Gate {
	return &Gate{sessions: sessions, rules: rules, logger: log}
}

// Authorize não altera o estado da sessão.
func (g *Gate) Authorize(ctx context.Context, method, path, sessionID string) Decision {
	if strings.EqualFold(method, http.MethodOptions) {
		return Decision{Outcome: Allow}
	}

	if sessionID == "" {
		return Decision{Outcome: Unauthenticated}
	}

	principal, err := g.sessions.Lookup(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, session.ErrSessionNotFound) && !errors.Is(err, session.ErrNoIdentity) {
			g.logger.Error("Falha ao consultar o armazenamento de sessões.", err)
		}
		return Decision{Outcome: Unauthenticated}
	}

	for _, rule := range g.rules {
		if !rule.matches(method, path) {
			continue
		}
		if principal.Role != rule.RequiredRole {
			g.logger.Debug("Acesso negado pelo gate.", map[string]interface{}{
				"method": method, "path": path, "user_id": principal.UserID, "role": principal.Role,
			})
			return Decision{Outcome: Forbidden, Principal: &principal}
		}
		break
	}

	return Decision{Outcome: Allow, Principal: &principal}
}
