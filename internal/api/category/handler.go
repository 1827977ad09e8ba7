package category

import (
	"context"
	"net/http"

	"bloghub/internal/api/response"
	"bloghub/internal/domain"
	"bloghub/internal/pkg/logger"
)

// CategoryService define o contrato que o Handler espera da camada de Serviço.
type CategoryService interface {
	GetByID(ctx context.Context, id int64) (domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, req domain.CategoryRequest) (domain.Category, error)
	Update(ctx context.Context, id int64, patch domain.CategoryPatch) (domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// Handler agrupa todos os métodos de Handler de categorias.
type Handler struct {
	Service CategoryService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc CategoryService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// Create lida com a requisição POST /api/categories.
// @Summary Cria uma categoria
// @Description Cria uma categoria. Exige papel ADMIN. O nome deve ser único.
// @Tags categories
// @Accept json
// @Produce json
// @Param category body domain.CategoryRequest true "Dados da categoria"
// @Success 201 {object} domain.Category
// @Failure 400 {object} map[string]string "Erros por campo"
// @Failure 401 {object} domain.AuthErrorResponse
// @Failure 403 {object} domain.AuthErrorResponse
// @Failure 409 {object} domain.ErrorResponse "Nome duplicado"
// @Security SessionCookie
// @Router /categories [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CategoryRequest
	if err := response.Decode(r, &req); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	created, err := h.Service.Create(r.Context(), req)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusCreated, created)
}

// List lida com a requisição GET /api/categories.
// @Summary Lista as categorias
// @Tags categories
// @Produce json
// @Success 200 {array} domain.Category
// @Failure 401 {object} domain.AuthErrorResponse
// @Security SessionCookie
// @Router /categories [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.List(r.Context())
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, categories)
}

// Get lida com a requisição GET /api/categories/{id}.
// @Summary Obtém uma categoria por ID
// @Tags categories
// @Produce json
// @Param id path int true "ID da categoria"
// @Success 200 {object} domain.Category
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 401 {object} domain.AuthErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security SessionCookie
// @Router /categories/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	category, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, category)
}

// Update lida com PUT e PATCH /api/categories/{id}. Ambos são atualizações parciais.
// @Summary Atualiza parcialmente uma categoria
// @Description Campos ausentes mantêm o valor atual. Exige papel ADMIN.
// @Tags categories
// @Accept json
// @Produce json
// @Param id path int true "ID da categoria"
// @Param patch body domain.CategoryPatch true "Campos a alterar"
// @Success 200 {object} domain.Category
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.AuthErrorResponse
// @Failure 403 {object} domain.AuthErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security SessionCookie
// @Router /categories/{id} [put]
// @Router /categories/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var patch domain.CategoryPatch
	if err := response.Decode(r, &patch); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	updated, err := h.Service.Update(r.Context(), id, patch)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, updated)
}

// Delete lida com a requisição DELETE /api/categories/{id}.
// @Summary Remove uma categoria
// @Tags categories
// @Produce json
// @Param id path int true "ID da categoria"
// @Success 200 {object} domain.MessageResponse
// @Failure 401 {object} domain.AuthErrorResponse
// @Failure 403 {object} domain.AuthErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security SessionCookie
// @Router /categories/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, domain.MessageResponse{Message: "Category deleted successfully"})
}
