package domain

// Author representa um autor do blog.
type Author struct {
	ID    int64  `json:"id" example:"1"`
	Name  string `json:"name" example:"Ada Lovelace"`
	Email string `json:"email" example:"ada@example.com"`
	About string `json:"about" example:"Escreve sobre máquinas analíticas."`
}

// AuthorRequest é o payload de criação de um autor.
type AuthorRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	About string `json:"about"`
}

// AuthorPatch é o payload de atualização parcial. Todo campo é opcional.
type AuthorPatch struct {
	Name  Optional[string] `json:"name" swaggertype:"string"`
	Email Optional[string] `json:"email" swaggertype:"string"`
	About Optional[string] `json:"about" swaggertype:"string"`
}

// IsEmpty indica se nenhum campo foi informado.
func (p AuthorPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Email.Set && !p.About.Set
}
