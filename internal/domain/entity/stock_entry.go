package entity

import "time"

// StockEntry representa la cantidad de un ítem en un almacén.
// Invariante: a lo sumo una fila por (item, almacén); Quantity nunca es negativa.
type StockEntry struct {
	ItemID      string
	WarehouseID string
	Quantity    int
	UpdatedAt   time.Time
}
