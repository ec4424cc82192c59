package entity

import "time"

// Material es una unidad de trabajo dentro de un área; reserva ítems del
// inventario mediante asignaciones.
type Material struct {
	ID        string
	Name      string
	AreaID    string
	CreatedAt time.Time
}
