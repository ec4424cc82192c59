package entity

import "time"

// Warehouse representa un almacén físico donde se guarda inventario (multi-almacén).
type Warehouse struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
