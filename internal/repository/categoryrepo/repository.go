package categoryrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bloghub/internal/domain"
	apperror "bloghub/internal/errors"
	"bloghub/internal/pkg/database"
	"bloghub/internal/pkg/logger"
)

// CategoryRepository implementa a persistência de categorias.
type CategoryRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewCategoryRepository cria e retorna uma nova instância do Repositório de Categorias.
func NewCategoryRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *CategoryRepository {
	return &CategoryRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

func notFound(id int64) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Category with id %d not found.", id))
}

func duplicate(name string) error {
	return apperror.NewConflictError(fmt.Sprintf("Category with name %s already exists.", name))
}

// FindByID busca uma categoria pelo ID.
func (r *CategoryRepository) FindByID(ctx context.Context, id int64) (domain.Category, error) {
	r.logger.Debug("Iniciando FindByID de categoria no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, cat_name, descr
        FROM categories
        WHERE id = $1`

	var category domain.Category
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(&category.ID, &category.CatName, &category.Descr)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Categoria não encontrada.", map[string]interface{}{"id": id})
		return domain.Category{}, notFound(id)
	}
	if err != nil {
		r.logger.Error("Falha ao buscar categoria no DB.", err)
		return domain.Category{}, apperror.NewDBError("Falha ao buscar categoria", err)
	}

	return category, nil
}

// FindAll busca todas as categorias, ordenadas por ID.
func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	r.logger.Debug("Iniciando FindAll de categorias no repositório.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, cat_name, descr
        FROM categories
        ORDER BY id`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar FindAll de categorias.", err)
		return nil, apperror.NewDBError("Falha ao buscar categorias", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.CatName, &category.Descr); err != nil {
			r.logger.Error("Falha ao mapear categoria na iteração de FindAll.", err)
			return nil, apperror.NewDBError("Falha ao mapear categorias do DB", err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de categorias.", err)
		return nil, apperror.NewDBError("Erro após iteração de categorias", err)
	}

	r.logger.Info("FindAll de categorias concluído.", map[string]interface{}{"total_categories": len(categories)})
	return categories, nil
}

// ExistsByName indica se já existe uma categoria com o nome exato informado.
func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	var exists bool
	err := r.DB.QueryRowContext(ctxTimeout,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE cat_name = $1)`, name,
	).Scan(&exists)
	if err != nil {
		r.logger.Error("Falha ao verificar nome de categoria no DB.", err)
		return false, apperror.NewDBError("Falha ao verificar nome de categoria", err)
	}
	return exists, nil
}

// Save insere a categoria quando ID é zero; caso contrário substitui a linha existente.
// Uma violação da constraint UNIQUE de cat_name vira ConflictError.
func (r *CategoryRepository) Save(ctx context.Context, category domain.Category) (domain.Category, error) {
	r.logger.Debug("Iniciando Save de categoria no repositório.", map[string]interface{}{"id": category.ID, "cat_name": category.CatName})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if category.ID == 0 {
		query := `
            INSERT INTO categories (cat_name, descr)
            VALUES ($1, $2)
            RETURNING id`

		err := r.DB.QueryRowContext(ctxTimeout, query, category.CatName, category.Descr).Scan(&category.ID)
		if database.IsUniqueViolation(err) {
			r.logger.Info("Nome de categoria duplicado no insert.", map[string]interface{}{"cat_name": category.CatName})
			return domain.Category{}, duplicate(category.CatName)
		}
		if err != nil {
			r.logger.Error("Falha ao inserir categoria no DB.", err)
			return domain.Category{}, apperror.NewDBError("Falha ao criar categoria", err)
		}

		r.logger.Info("Categoria criada com sucesso.", map[string]interface{}{"id": category.ID, "cat_name": category.CatName})
		return category, nil
	}

	query := `
        UPDATE categories
        SET cat_name = $1, descr = $2
        WHERE id = $3`

	result, err := r.DB.ExecContext(ctxTimeout, query, category.CatName, category.Descr, category.ID)
	if database.IsUniqueViolation(err) {
		r.logger.Info("Nome de categoria duplicado no update.", map[string]interface{}{"id": category.ID, "cat_name": category.CatName})
		return domain.Category{}, duplicate(category.CatName)
	}
	if err != nil {
		r.logger.Error("Falha ao atualizar categoria no DB.", err)
		return domain.Category{}, apperror.NewDBError("Falha ao atualizar categoria", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após Save.", err)
		return domain.Category{}, apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		return domain.Category{}, notFound(category.ID)
	}

	r.logger.Info("Categoria atualizada com sucesso.", map[string]interface{}{"id": category.ID, "cat_name": category.CatName})
	return category, nil
}

// DeleteByID remove uma categoria pelo ID.
func (r *CategoryRepository) DeleteByID(ctx context.Context, id int64) error {
	r.logger.Debug("Iniciando DeleteByID de categoria no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar categoria do DB.", err)
		return apperror.NewDBError("Falha ao deletar categoria", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após DeleteByID.", err)
		return apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		r.logger.Info("Categoria não encontrada para exclusão.", map[string]interface{}{"id": id})
		return notFound(id)
	}

	r.logger.Info("Categoria deletada com sucesso.", map[string]interface{}{"id": id})
	return nil
}
