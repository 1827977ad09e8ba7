package author

import (
	"context"
	"net/http"

	"bloghub/internal/api/response"
	"bloghub/internal/domain"
	"bloghub/internal/pkg/logger"
)

// AuthorService define o contrato que o Handler espera da camada de Serviço.
type AuthorService interface {
	GetByID(ctx context.Context, id int64) (domain.Author, error)
	List(ctx context.Context) ([]domain.Author, error)
	Create(ctx context.Context, req domain.AuthorRequest) (domain.Author, error)
	Update(ctx context.Context, id int64, patch domain.AuthorPatch) (domain.Author, error)
	Delete(ctx context.Context, id int64) error
}

// Handler agrupa todos os métodos de Handler de autores.
type Handler struct {
	Service AuthorService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AuthorService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// Create lida com a requisição POST /api/authors.
// @Summary Cria um autor
// @Description Cria um autor. Exige apenas uma sessão válida.
// @Tags authors
// @Accept json
// @Produce json
// @Param author body domain.AuthorRequest true "Dados do autor"
// @Success 201 {object} domain.Author
// @Failure 400 {object} map[string]string "Erros por campo"
// @Failure 401 {object} domain.AuthErrorResponse
// @Security SessionCookie
// @Router /authors [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.AuthorRequest
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

// List lida com a requisição GET /api/authors.
// @Summary Lista os autores
// @Tags authors
// @Produce json
// @Success 200 {array} domain.Author
// @Failure 401 {object} domain.AuthErrorResponse
// @Security SessionCookie
// @Router /authors [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.Service.List(r.Context())
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, authors)
}

// Get lida com a requisição GET /api/authors/{id}.
// @Summary Obtém um autor por ID
// @Tags authors
// @Produce json
// @Param id path int true "ID do autor"
// @Success 200 {object} domain.Author
// @Failure 400 {object} domain.ErrorResponse "ID inválido"
// @Failure 401 {object} domain.AuthErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security SessionCookie
// @Router /authors/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	author, err := h.Service.GetByID(r.Context(), id)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}
	response.JSON(w, h.Logger, http.StatusOK, author)
}

// Update lida com PUT e PATCH /api/authors/{id}. Ambos são atualizações parciais.
// @Summary Atualiza parcialmente um autor
// @Description Campos ausentes mantêm o valor atual.
// @Tags authors
// @Accept json
// @Produce json
// @Param id path int true "ID do autor"
// @Param patch body domain.AuthorPatch true "Campos a alterar"
// @Success 200 {object} domain.Author
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.AuthErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security SessionCookie
// @Router /authors/{id} [put]
// @Router /authors/{id} [patch]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := response.PathID(r)
	if err != nil {
		response.Error(w, r, h.Logger, err)
		return
	}

	var patch domain.AuthorPatch
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

// Delete lida com a requisição DELETE /api/authors/{id}.
// @Summary Remove um autor
// @Tags authors
// @Produce json
// @Param id path int true "ID do autor"
// @Success 200 {object} domain.MessageResponse
// @Failure 401 {object} domain.AuthErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security SessionCookie
// @Router /authors/{id} [delete]
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
	response.JSON(w, h.Logger, http.StatusOK, domain.MessageResponse{Message: "Author deleted successfully"})
}
