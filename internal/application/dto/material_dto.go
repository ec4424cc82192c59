package dto

import "time"

// CreateMaterialRequest entrada para crear un material dentro de un área.
type CreateMaterialRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// MaterialResponse salida de un material.
type MaterialResponse struct {
	ID        string    `json:"id"`
	AreaID    string    `json:"area_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
