package dto

import "time"

// AllocateRequest entrada para reservar cantidad de un ítem para un material.
type AllocateRequest struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"gt=0"`
}

// AllocationResponse salida de una asignación (reserva viva).
type AllocationResponse struct {
	ID         string    `json:"id"`
	MaterialID string    `json:"material_id"`
	ItemID     string    `json:"item_id"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
