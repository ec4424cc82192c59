package entity

import "time"

// Allocation representa una reserva de cantidad de un ítem por un material.
// Invariante: a lo sumo una fila por (material, ítem); reservas repetidas
// acumulan sobre la fila existente. Cada mutación ajusta incrementalmente
// el EstimatedDemand del ítem referenciado.
type Allocation struct {
	ID         string
	MaterialID string
	ItemID     string
	Quantity   int
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
