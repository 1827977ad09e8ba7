package authorservice

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/asaskevich/govalidator"

	"bloghub/internal/domain"
	apperror "bloghub/internal/errors"
	"bloghub/internal/pkg/logger"
)

// AuthorRepository define o contrato que o Serviço de Autores espera da camada de Persistência.
type AuthorRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Author, error)
	FindAll(ctx context.Context) ([]domain.Author, error)
	Save(ctx context.Context, author domain.Author) (domain.Author, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Service aplica os casos de uso de autores.
type Service struct {
	repo   AuthorRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Autores.
func NewService(repo AuthorRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetByID busca um autor; é a única fonte de verdade sobre a existência de um ID.
func (s *Service) GetByID(ctx context.Context, id int64) (domain.Author, error) {
	author, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Author{}, err // Erros do repositório já são NotFoundError ou DBError
	}
	return author, nil
}

// List devolve todos os autores.
func (s *Service) List(ctx context.Context) ([]domain.Author, error) {
	authors, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar autores no repositório.", err)
		return nil, err
	}
	return authors, nil
}

// Create valida e persiste um novo autor.
func (s *Service) Create(ctx context.Context, req domain.AuthorRequest) (domain.Author, error) {
	s.logger.Debug("Iniciando criação de autor no serviço.", map[string]interface{}{"name": req.Name})

	if err := validateRequest(req); err != nil {
		s.logger.Warn("Falha na validação do autor.", map[string]interface{}{"error": err.Error()})
		return domain.Author{}, err
	}

	created, err := s.repo.Save(ctx, domain.Author{Name: req.Name, Email: req.Email, About: req.About})
	if err != nil {
		s.logger.Error("Falha ao criar autor no repositório.", err)
		return domain.Author{}, err
	}

	s.logger.Info("Autor criado com sucesso.", map[string]interface{}{"id": created.ID})
	return created, nil
}

// Update aplica um patch parcial: campos ausentes mantêm o valor persistido,
// campos presentes são validados e sobrescrevem o atual. Há um único Save ao final.
func (s *Service) Update(ctx context.Context, id int64, patch domain.AuthorPatch) (domain.Author, error) {
	s.logger.Debug("Iniciando atualização de autor no serviço.", map[string]interface{}{"id": id})

	author, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Author{}, err
	}

	if patch.IsEmpty() {
		return domain.Author{}, apperror.NewValidationError("At least one field (name, email or about) must be provided for update.")
	}

	if err := validatePatch(patch); err != nil {
		s.logger.Warn("Falha na validação do patch de autor.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Author{}, err
	}

	if v, ok := patch.Name.Get(); ok {
		author.Name = v
	}
	if v, ok := patch.Email.Get(); ok {
		author.Email = v
	}
	if v, ok := patch.About.Get(); ok {
		author.About = v
	}

	updated, err := s.repo.Save(ctx, author)
	if err != nil {
		s.logger.Error("Falha ao atualizar autor no repositório.", err)
		return domain.Author{}, err
	}

	s.logger.Info("Autor atualizado com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// Delete remove um autor existente.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error("Falha ao deletar autor no repositório.", err)
		return err
	}

	s.logger.Info("Autor deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}

func validateRequest(req domain.AuthorRequest) error {
	fields := map[string]string{}
	if utf8.RuneCountInString(req.Name) < 3 {
		fields["name"] = "Name must be at least 3 characters long"
	}
	if !govalidator.IsEmail(req.Email) {
		fields["email"] = "Email should be valid"
	}
	if utf8.RuneCountInString(req.About) < 1 {
		fields["about"] = "About section must be at least 1 characters long"
	}
	return apperror.NewFieldValidationError(fields)
}

// validatePatch só olha para os campos presentes.
func validatePatch(p domain.AuthorPatch) error {
	fields := map[string]string{}
	if v, ok := p.Name.Get(); ok && !between(v, 2, 50) {
		fields["name"] = "Name must be between 2 and 50 characters"
	}
	if v, ok := p.Email.Get(); ok && !govalidator.IsEmail(v) {
		fields["email"] = "Email should be valid"
	}
	if v, ok := p.About.Get(); ok && !between(v, 1, 200) {
		fields["about"] = "About section must not exceed 200 and min size 1 characters"
	}
	return apperror.NewFieldValidationError(fields)
}

// between exige conteúdo não-branco e tamanho (em runas) dentro de [lo, hi].
func between(s string, lo, hi int) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	n := utf8.RuneCountInString(s)
	return n >= lo && n <= hi
}
