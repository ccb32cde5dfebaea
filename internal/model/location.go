package model

import "time"

// Location is a named physical place where objects are kept.
type Location struct {
	ID          int64     `json:"id"`
	Name        string    `json:"nome"`
	Description *string   `json:"descricao"`
	CreatedAt   time.Time `json:"data_criacao"`
	UpdatedAt   time.Time `json:"data_atualizacao"`
}

// LocationCreate is the input for registering a new location.
type LocationCreate struct {
	Name        string  `json:"nome" validate:"required,min=1,max=100"`
	Description *string `json:"descricao" validate:"omitempty,max=255"`
}

// LocationUpdate carries only the fields the caller supplied.
type LocationUpdate struct {
	Name        Optional[string] `json:"nome"`
	Description Optional[string] `json:"descricao"`
}
