package dto

import "time"

// CreateAreaRequest entrada para crear un área de campaña.
type CreateAreaRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// AreaResponse salida de un área.
type AreaResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
