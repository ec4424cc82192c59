package dto

// RequirementRow fila del reporte de requerimientos, ya ordenada por urgencia.
type RequirementRow struct {
	ItemID          string `json:"item_id"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	OnHand          int    `json:"on_hand"`
	EstimatedDemand int    `json:"estimated_demand"`
	Shortfall       int    `json:"shortfall"`
	Status          string `json:"status"`
}
