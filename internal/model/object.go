package model

import "time"

// Object is a cataloged personal item.
// LocationID is the foreign key; Location is the resolved record and is
// filled on every read that returns an Object.
type Object struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nome"`
	Description *string   `json:"descricao"`
	Category    *string   `json:"categoria"`
	Tags        *string   `json:"tags"`
	ImagePath   *string   `json:"caminho_imagem"`
	LocationID  *int64    `json:"localizacao_id"`
	CreatedAt   time.Time `json:"data_cadastro"`
	UpdatedAt   time.Time `json:"data_atualizacao"`
	Location    *Location `json:"local"`
}

// ObjectCreate is the input for creating an object record.
type ObjectCreate struct {
	Name        string  `json:"nome" validate:"required,min=1,max=100"`
	Description *string `json:"descricao" validate:"omitempty,max=500"`
	Category    *string `json:"categoria" validate:"omitempty,max=100"`
	Tags        *string `json:"tags"`
	LocationID  *int64  `json:"localizacao_id"`
}

// ObjectUpdate carries only the fields the caller supplied.
// An explicit null clears the nullable columns.
type ObjectUpdate struct {
	Name        Optional[string] `json:"nome"`
	Description Optional[string] `json:"descricao"`
	Category    Optional[string] `json:"categoria"`
	Tags        Optional[string] `json:"tags"`
	LocationID  Optional[int64]  `json:"localizacao_id"`
}

// ObjectFilter narrows object listings. Empty strings and a nil LocationID
// mean "no filter"; the remaining conditions are AND-combined.
type ObjectFilter struct {
	Name       string
	Category   string
	Tag        string
	LocationID *int64
}
