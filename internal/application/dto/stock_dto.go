package dto

import "time"

// ReceiveRequest entrada para registrar una recepción de stock.
// Si el ítem no existe se crea con la categoría dada; si existe con otra
// categoría la operación falla sin efectos.
type ReceiveRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Category    string `json:"category"`
	WarehouseID string `json:"warehouse_id" validate:"required"`
	Quantity    int    `json:"quantity" validate:"gte=0"`
}

// ItemResponse salida de un ítem del catálogo.
type ItemResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	EstimatedDemand int       `json:"estimated_demand"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ItemStockRow ítem del catálogo con su stock en la vista consultada
// (consolidado o filtrado a un almacén).
type ItemStockRow struct {
	ItemResponse
	OnHand int `json:"on_hand"`
}

// TotalsResponse mapa ítem → cantidad. Una clave ausente significa cero.
type TotalsResponse struct {
	WarehouseID string         `json:"warehouse_id,omitempty"`
	Totals      map[string]int `json:"totals"`
}

// DistributionRow cantidad de un ítem en un almacén (solo cantidades positivas).
type DistributionRow struct {
	WarehouseID   string `json:"warehouse_id"`
	WarehouseName string `json:"warehouse_name"`
	Quantity      int    `json:"quantity"`
}

// DistributionResponse distribución de un ítem por almacén, ordenada por
// nombre de almacén ascendente.
type DistributionResponse struct {
	Item ItemResponse      `json:"item"`
	Rows []DistributionRow `json:"rows"`
}
