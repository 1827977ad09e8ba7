package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Status  int    `json:"status" example:"404"`
	Message string `json:"message" example:"Category with id 7 not found."`
}

// AuthErrorResponse é o corpo devolvido pelo gate de autorização (401/403).
type AuthErrorResponse struct {
	Error string `json:"error" example:"Unauthorized: Please log in to access this resource."`
}

// MessageResponse é usado em respostas de sucesso sem entidade (ex: exclusão).
type MessageResponse struct {
	Message string `json:"message" example:"Category deleted successfully"`
}
