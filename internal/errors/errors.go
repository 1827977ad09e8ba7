package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"bloghub/internal/domain"
)

// AppError é a interface central para todos os erros customizados do bloghub.
// Ela permite que o código externo (Handler) acesse a Categoria e a Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Category() string // Categoria do erro (e.g., "VALIDATION", "NOT_FOUND", "INTERNAL")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Message() string  // Mensagem exposta ao cliente
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa a violação de uma regra de negócio sobre a requisição inteira
// (ex: nenhum campo informado numa atualização, JSON malformado, ID inválido).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("validation error: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Message() string  { return e.Msg }
func (e *ValidationError) Unwrap() error    { return nil } // Não encapsula erro subjacente

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// FieldValidationError agrupa falhas de validação por campo (nome do campo JSON -> mensagem).
type FieldValidationError struct {
	Fields map[string]string
}

func (e *FieldValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("validation error: %s", strings.Join(parts, "; "))
}
func (e *FieldValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *FieldValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *FieldValidationError) Message() string  { return e.Error() }
func (e *FieldValidationError) Unwrap() error    { return nil }

// NewFieldValidationError cria um erro de validação por campo. Retorna nil se não houver falhas,
// o que permite o uso direto como `if err := NewFieldValidationError(fields); err != nil`.
func NewFieldValidationError(fields map[string]string) AppError {
	if len(fields) == 0 {
		return nil
	}
	return &FieldValidationError{Fields: fields}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("not found: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Message() string  { return e.Msg }
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa um conflito na regra de negócio (e.g., recurso duplicado).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("conflict: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Message() string  { return e.Msg }
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// UnauthorizedError representa uma requisição sem sessão válida (ou credenciais inválidas no login).
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("unauthorized: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized } // 401
func (e *UnauthorizedError) Message() string  { return e.Msg }
func (e *UnauthorizedError) Unwrap() error    { return nil }

// NewUnauthorizedError cria um novo erro de autenticação.
func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError representa um usuário autenticado sem o papel exigido.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return fmt.Sprintf("forbidden: %s", e.Msg) }
func (e *ForbiddenError) Category() string { return "FORBIDDEN" }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden } // 403
func (e *ForbiddenError) Message() string  { return e.Msg }
func (e *ForbiddenError) Unwrap() error    { return nil }

// NewForbiddenError cria um novo erro de autorização.
func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// TooManyRequestsError é emitido pelo rate limiter.
type TooManyRequestsError struct {
	Msg string
}

func (e *TooManyRequestsError) Error() string    { return fmt.Sprintf("rate limited: %s", e.Msg) }
func (e *TooManyRequestsError) Category() string { return "RATE_LIMITED" }
func (e *TooManyRequestsError) HTTPStatus() int  { return http.StatusTooManyRequests } // 429
func (e *TooManyRequestsError) Message() string  { return e.Msg }
func (e *TooManyRequestsError) Unwrap() error    { return nil }

// NewTooManyRequestsError cria um erro de limite de requisições.
func NewTooManyRequestsError(msg string) AppError {
	return &TooManyRequestsError{Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente (e.g., erro do driver SQL)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("internal error: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Message() string  { return e.Msg }
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB): %s", msg, err.Error()), err)
}

// --- Tradução Final (Error Translator) ---

// Translate recebe qualquer erro e devolve o status HTTP, a categoria (para log) e o corpo
// da resposta. A tradução é total: erros não tipados viram 500 com a mensagem original.
func Translate(err error) (int, string, interface{}) {
	var fieldErr *FieldValidationError
	if errors.As(err, &fieldErr) {
		return fieldErr.HTTPStatus(), fieldErr.Category(), fieldErr.Fields
	}

	var unauthErr *UnauthorizedError
	if errors.As(err, &unauthErr) {
		return unauthErr.HTTPStatus(), unauthErr.Category(), domain.AuthErrorResponse{Error: unauthErr.Msg}
	}

	var forbiddenErr *ForbiddenError
	if errors.As(err, &forbiddenErr) {
		return forbiddenErr.HTTPStatus(), forbiddenErr.Category(), domain.AuthErrorResponse{Error: forbiddenErr.Msg}
	}

	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), domain.ErrorResponse{
			Status:  appErr.HTTPStatus(),
			Message: appErr.Message(),
		}
	}

	// Erro não tipado (e.g., erro simples de pacote Go que não implementa AppError)
	return http.StatusInternalServerError, "UNKNOWN_ERROR", domain.ErrorResponse{
		Status:  http.StatusInternalServerError,
		Message: err.Error(),
	}
}
