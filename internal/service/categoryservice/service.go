package categoryservice

import (
	"context"
	"fmt"
	"strings"

	"bloghub/internal/domain"
	apperror "bloghub/internal/errors"
	"bloghub/internal/pkg/logger"
)

// CategoryRepository define o contrato que o Serviço de Categorias espera da camada de Persistência.
type CategoryRepository interface {
	FindByID(ctx context.Context, id int64) (domain.Category, error)
	FindAll(ctx context.Context) ([]domain.Category, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, category domain.Category) (domain.Category, error)
	DeleteByID(ctx context.Context, id int64) error
}

// Service aplica os casos de uso de categorias.
type Service struct {
	repo   CategoryRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Categorias.
func NewService(repo CategoryRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// GetByID busca uma categoria pelo ID.
func (s *Service) GetByID(ctx context.Context, id int64) (domain.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}
	return category, nil
}

// List devolve todas as categorias.
func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar categorias no repositório.", err)
		return nil, err
	}
	return categories, nil
}

// Create valida o payload e rejeita nomes já existentes antes de qualquer escrita.
func (s *Service) Create(ctx context.Context, req domain.CategoryRequest) (domain.Category, error) {
	s.logger.Debug("Iniciando criação de categoria no serviço.", map[string]interface{}{"cat_name": req.CatName})

	fields := map[string]string{}
	if strings.TrimSpace(req.CatName) == "" {
		fields["catName"] = "Category name is required"
	}
	if strings.TrimSpace(req.Descr) == "" {
		fields["descr"] = "Category description is required"
	}
	if err := apperror.NewFieldValidationError(fields); err != nil {
		s.logger.Warn("Falha na validação da categoria.", map[string]interface{}{"error": err.Error()})
		return domain.Category{}, err
	}

	exists, err := s.repo.ExistsByName(ctx, req.CatName)
	if err != nil {
		s.logger.Error("Falha ao verificar nome de categoria.", err)
		return domain.Category{}, err
	}
	if exists {
		s.logger.Info("Categoria duplicada rejeitada.", map[string]interface{}{"cat_name": req.CatName})
		return domain.Category{}, apperror.NewConflictError(fmt.Sprintf("Category with name %s already exists.", req.CatName))
	}

	created, err := s.repo.Save(ctx, domain.Category{CatName: req.CatName, Descr: req.Descr})
	if err != nil {
		s.logger.Error("Falha ao criar categoria no repositório.", err)
		return domain.Category{}, err
	}

	s.logger.Info("Categoria criada com sucesso.", map[string]interface{}{"id": created.ID, "cat_name": created.CatName})
	return created, nil
}

// Update aplica um patch parcial sobre a categoria persistida.
// O nome não é comparado com as demais categorias aqui; só a constraint do banco o protege.
func (s *Service) Update(ctx context.Context, id int64, patch domain.CategoryPatch) (domain.Category, error) {
	s.logger.Debug("Iniciando atualização de categoria no serviço.", map[string]interface{}{"id": id})

	category, err := s.GetByID(ctx, id)
	if err != nil {
		return domain.Category{}, err
	}

	if patch.IsEmpty() {
		return domain.Category{}, apperror.NewValidationError("At least one field (catName or descr) must be provided for update.")
	}

	fields := map[string]string{}
	if v, ok := patch.CatName.Get(); ok && strings.TrimSpace(v) == "" {
		fields["catName"] = "Category name must not be blank"
	}
	if v, ok := patch.Descr.Get(); ok && strings.TrimSpace(v) == "" {
		fields["descr"] = "Category description must not be blank"
	}
	if err := apperror.NewFieldValidationError(fields); err != nil {
		s.logger.Warn("Falha na validação do patch de categoria.", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.Category{}, err
	}

	if v, ok := patch.CatName.Get(); ok {
		category.CatName = v
	}
	if v, ok := patch.Descr.Get(); ok {
		category.Descr = v
	}

	updated, err := s.repo.Save(ctx, category)
	if err != nil {
		s.logger.Error("Falha ao atualizar categoria no repositório.", err)
		return domain.Category{}, err
	}

	s.logger.Info("Categoria atualizada com sucesso.", map[string]interface{}{"id": updated.ID})
	return updated, nil
}

// Delete remove uma categoria existente.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.Error("Falha ao deletar categoria no repositório.", err)
		return err
	}

	s.logger.Info("Categoria deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}
