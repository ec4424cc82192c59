package entity

import "time"

// Item representa un bien rastreable del inventario (multi-almacén).
// Name es único y case-sensitive; Category es inmutable una vez elegida.
// EstimatedDemand es un agregado derivado: siempre igual a la suma de las
// asignaciones vivas que referencian el ítem, mantenido incrementalmente.
type Item struct {
	ID              string
	Name            string
	Category        string
	EstimatedDemand int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
