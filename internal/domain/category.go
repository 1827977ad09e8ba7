package domain

// Category representa uma categoria de posts. CatName é único entre todas as categorias.
type Category struct {
	ID      int64  `json:"id" example:"1"`
	CatName string `json:"catName" example:"Tech"`
	Descr   string `json:"descr" example:"Tech posts"`
}

// CategoryRequest é o payload de criação de uma categoria.
type CategoryRequest struct {
	CatName string `json:"catName"`
	Descr   string `json:"descr"`
}

// CategoryPatch é o payload de atualização parcial de uma categoria.
type CategoryPatch struct {
	CatName Optional[string] `json:"catName" swaggertype:"string"`
	Descr   Optional[string] `json:"descr" swaggertype:"string"`
}

// IsEmpty indica se nenhum campo foi informado.
func (p CategoryPatch) IsEmpty() bool {
	return !p.CatName.Set && !p.Descr.Set
}
