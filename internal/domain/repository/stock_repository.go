package repository

// WarehouseQuantity es una fila de la distribución de un ítem por almacén.
type WarehouseQuantity struct {
	WarehouseID   string
	WarehouseName string
	Quantity      int
}

// StockRepository define el puerto para el ledger de stock por (ítem, almacén).
// AddQuantity debe ser una secuencia atómica "leer-o-crear-luego-sumar"
// respaldada por la restricción de unicidad del par: nunca sobreescribe, acumula.
type StockRepository interface {
	AddQuantity(itemID, warehouseID string, quantity int) error
	ConsolidatedTotals() (map[string]int, error)
	TotalsForWarehouse(warehouseID string) (map[string]int, error)
	DistributionByItem(itemID string) ([]WarehouseQuantity, error)
	DeleteByItem(itemID string) error
	DeleteByWarehouse(warehouseID string) error
}
