package authorrepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"bloghub/internal/domain"
	apperror "bloghub/internal/errors"
	"bloghub/internal/pkg/logger"
)

// AuthorRepository implementa a persistência de autores.
type AuthorRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewAuthorRepository cria e retorna uma nova instância do Repositório de Autores.
func NewAuthorRepository(db *sql.DB, dbTimeout time.Duration, logger logger.Logger) *AuthorRepository {
	return &AuthorRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    logger,
	}
}

func notFound(id int64) error {
	return apperror.NewNotFoundError(fmt.Sprintf("Author not found with id: %d", id))
}

// FindByID busca um autor pelo ID.
func (r *AuthorRepository) FindByID(ctx context.Context, id int64) (domain.Author, error) {
	r.logger.Debug("Iniciando FindByID de autor no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, name, email, about
        FROM authors
        WHERE id = $1`

	var author domain.Author
	err := r.DB.QueryRowContext(ctxTimeout, query, id).Scan(
		&author.ID, &author.Name, &author.Email, &author.About,
	)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Info("Autor não encontrado.", map[string]interface{}{"id": id})
		return domain.Author{}, notFound(id)
	}
	if err != nil {
		r.logger.Error("Falha ao buscar autor no DB.", err)
		return domain.Author{}, apperror.NewDBError("Falha ao buscar autor", err)
	}

	return author, nil
}

// FindAll busca todos os autores, ordenados por ID.
func (r *AuthorRepository) FindAll(ctx context.Context) ([]domain.Author, error) {
	r.logger.Debug("Iniciando FindAll de autores no repositório.", nil)

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
        SELECT id, name, email, about
        FROM authors
        ORDER BY id`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		r.logger.Error("Falha ao executar FindAll de autores.", err)
		return nil, apperror.NewDBError("Falha ao buscar autores", err)
	}
	defer rows.Close()

	authors := []domain.Author{}
	for rows.Next() {
		var author domain.Author
		if err := rows.Scan(&author.ID, &author.Name, &author.Email, &author.About); err != nil {
			r.logger.Error("Falha ao mapear autor na iteração de FindAll.", err)
			return nil, apperror.NewDBError("Falha ao mapear autores do DB", err)
		}
		authors = append(authors, author)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Erro após iteração das linhas de autores.", err)
		return nil, apperror.NewDBError("Erro após iteração de autores", err)
	}

	r.logger.Info("FindAll de autores concluído.", map[string]interface{}{"total_authors": len(authors)})
	return authors, nil
}

// Save insere o autor quando ID é zero; caso contrário substitui a linha existente.
func (r *AuthorRepository) Save(ctx context.Context, author domain.Author) (domain.Author, error) {
	r.logger.Debug("Iniciando Save de autor no repositório.", map[string]interface{}{"id": author.ID, "name": author.Name})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	if author.ID == 0 {
		query := `
            INSERT INTO authors (name, email, about)
            VALUES ($1, $2, $3)
            RETURNING id`

		err := r.DB.QueryRowContext(ctxTimeout, query, author.Name, author.Email, author.About).Scan(&author.ID)
		if err != nil {
			r.logger.Error("Falha ao inserir autor no DB.", err)
			return domain.Author{}, apperror.NewDBError("Falha ao criar autor", err)
		}

		r.logger.Info("Autor criado com sucesso.", map[string]interface{}{"id": author.ID})
		return author, nil
	}

	query := `
        UPDATE authors
        SET name = $1, email = $2, about = $3
        WHERE id = $4`

	result, err := r.DB.ExecContext(ctxTimeout, query, author.Name, author.Email, author.About, author.ID)
	if err != nil {
		r.logger.Error("Falha ao atualizar autor no DB.", err)
		return domain.Author{}, apperror.NewDBError("Falha ao atualizar autor", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após Save.", err)
		return domain.Author{}, apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		return domain.Author{}, notFound(author.ID)
	}

	r.logger.Info("Autor atualizado com sucesso.", map[string]interface{}{"id": author.ID})
	return author, nil
}

// DeleteByID remove um autor pelo ID.
func (r *AuthorRepository) DeleteByID(ctx context.Context, id int64) error {
	r.logger.Debug("Iniciando DeleteByID de autor no repositório.", map[string]interface{}{"id": id})

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	result, err := r.DB.ExecContext(ctxTimeout, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Falha ao deletar autor do DB.", err)
		return apperror.NewDBError("Falha ao deletar autor", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Falha ao verificar linhas afetadas após DeleteByID.", err)
		return apperror.NewDBError("Falha ao verificar linhas afetadas", err)
	}
	if rowsAffected == 0 {
		r.logger.Info("Autor não encontrado para exclusão.", map[string]interface{}{"id": id})
		return notFound(id)
	}

	r.logger.Info("Autor deletado com sucesso.", map[string]interface{}{"id": id})
	return nil
}
