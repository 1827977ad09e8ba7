package user

import (
	"context"
	"net/http"

	"bloghub/internal/api/response"
	"bloghub/internal/domain"
	"bloghub/internal/pkg/logger"
	"bloghub/internal/pkg/middleware"
)

// UserService define o contrato para as operações de registro e sessão.
type UserService interface {
	Register(ctx context.Context, registration domain.UserRegistration, role domain.Role) (domain.User, error)
	Login(ctx context.Context, email string, password string) (string, domain.Principal, error)
	Logout(ctx context.Context, sessionID string) error
}

// CookieOptions controla o cookie de sessão emitido no login.
type CookieOptions struct {
	Name   string
	Secure bool
	MaxAge int // segundos
}

// Handler agrupa todos os métodos de Handler do usuário.
type Handler struct {
	Service UserService
	Cookie  CookieOptions
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UserService, cookie CookieOptions, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Cookie:  cookie,
		Logger:  log,
	}
}

// Register lida com a requisição POST /api/auth/register.
// @Summary Registra um novo usuário
// @Description Cria um usuário com papel USER, hasheia a senha e salva no banco de dados.
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body domain.UserRegistration true "Credenciais de registro (email e senha)"
// @Success 201 {object} domain.User
// @Failure 400 {object} map[string]string "Erros por campo"
// @Failure 409 {object} domain.ErrorResponse "E-mail já cadastrado"
// @Router /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var registration domain.UserRegistration
	if err := response.Decode(r, &registration); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	user, err := h.Service.Register(r.Context(), registration, domain.RoleUser)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusCreated, user)
}

// Login lida com a requisição POST /api/auth/login.
// @Summary Abre uma sessão
// @Description Valida as credenciais e devolve o cookie de sessão.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body domain.LoginRequest true "Email e senha"
// @Success 200 {object} domain.Principal
// @Failure 401 {object} domain.AuthErrorResponse "Credenciais inválidas"
// @Router /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	sessionID, principal, err := h.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   h.Cookie.MaxAge,
		HttpOnly: true,
		Secure:   h.Cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	response.JSON(w, h.Logger, http.StatusOK, principal)
}

// Logout lida com a requisição POST /api/auth/logout.
// @Summary Encerra a sessão
// @Tags auth
// @Success 204
// @Router /auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.Logout(r.Context(), middleware.SessionID(r, h.Cookie.Name)); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cookie.Secure,
	})
	w.WriteHeader(http.StatusNoContent)
}
