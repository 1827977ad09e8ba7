package userservice

import (
	"context"
	"errors"
	"strings"

	"github.com/asaskevich/govalidator"
	"golang.org/x/crypto/bcrypt"

	"bloghub/internal/domain"
	apperror "bloghub/internal/errors"
	"bloghub/internal/pkg/logger"
	"bloghub/internal/pkg/session"
)

// UserRepository define o contrato de persistência de usuários.
type UserRepository interface {
	Save(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// UserService registra usuários e abre/fecha sessões.
type UserService struct {
	UserRepo UserRepository
	Sessions session.Store
	logger   logger.Logger
}

// NewService cria uma nova instância do UserService.
func NewService(repo UserRepository, sessions session.Store, logger logger.Logger) *UserService {
	return &UserService{
		UserRepo: repo,
		Sessions: sessions,
		logger:   logger,
	}
}

// Register registra um novo usuário com o papel informado (USER se vazio).
// Ele faz o hashing da senha e lida com validações básicas.
func (s *UserService) Register(ctx context.Context, registration domain.UserRegistration, role domain.Role) (domain.User, error) {
	fields := map[string]string{}
	if !govalidator.IsEmail(registration.Email) {
		fields["email"] = "Email should be valid"
	}
	if strings.TrimSpace(registration.Password) == "" {
		fields["password"] = "Password is required"
	}
	if err := apperror.NewFieldValidationError(fields); err != nil {
		return domain.User{}, err
	}

	if role == "" {
		role = domain.RoleUser
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(registration.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, apperror.NewInternalError("Falha ao gerar hash da senha.", err)
	}

	user, err := s.UserRepo.Save(ctx, domain.User{
		Email:        registration.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
	})
	if err != nil {
		return domain.User{}, err // ConflictError para e-mail duplicado
	}

	s.logger.Info("Usuário registrado.", map[string]interface{}{"user_id": user.ID, "role": user.Role})
	return user, nil
}

// Login autentica um usuário, verifica a senha e abre uma sessão.
// Devolve o id da sessão e a identidade associada.
func (s *UserService) Login(ctx context.Context, email string, password string) (string, domain.Principal, error) {
	if email == "" || password == "" {
		return "", domain.Principal{}, apperror.NewUnauthorizedError("Email e senha são obrigatórios.")
	}

	user, err := s.UserRepo.FindByEmail(ctx, email)
	if err != nil {
		// NotFound vira 401 para não revelar quais e-mails existem.
		var notFoundErr *apperror.NotFoundError
		if errors.As(err, &notFoundErr) {
			return "", domain.Principal{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
		}
		return "", domain.Principal{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.Principal{}, apperror.NewUnauthorizedError("Credenciais inválidas.")
	}

	principal := domain.Principal{UserID: user.ID, Role: user.Role}
	sessionID, err := s.Sessions.Create(ctx, principal)
	if err != nil {
		return "", domain.Principal{}, apperror.NewInternalError("Falha ao criar sessão.", err)
	}

	s.logger.Info("Sessão aberta.", map[string]interface{}{"user_id": user.ID})
	return sessionID, principal, nil
}

// Logout encerra a sessão. Um id vazio ou desconhecido não é erro.
func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		return apperror.NewInternalError("Falha ao encerrar sessão.", err)
	}
	return nil
}
