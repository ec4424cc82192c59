package projection

import (
	"sort"

	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
)

// Requirement es una fila del reporte de requerimientos: stock consolidado
// frente a demanda estimada de un ítem, con su faltante y señal de triaje.
type Requirement struct {
	ItemID          string
	Name            string
	Category        string
	OnHand          int
	EstimatedDemand int
	Shortfall       int
	Status          Status
}

// BuildReport proyecta el reporte de requerimientos a partir del catálogo y el
// mapa consolidado de stock (item → total en todos los almacenes). Una clave
// ausente en totals significa cero. Se suprimen los ítems sin demanda y sin
// faltante (no aportan señal accionable). Orden: urgencia ascendente
// (CRITICAL, PARTIAL, ADEQUATE), dentro de igual urgencia faltante descendente
// y como desempate final el id del ítem para un orden determinista.
func BuildReport(items []*entity.Item, totals map[string]int) []Requirement {
	report := make([]Requirement, 0, len(items))
	for _, it := range items {
		onHand := totals[it.ID]
		shortfall := it.EstimatedDemand - onHand
		if shortfall < 0 {
			shortfall = 0
		}
		if it.EstimatedDemand <= 0 && shortfall <= 0 {
			continue
		}
		report = append(report, Requirement{
			ItemID:          it.ID,
			Name:            it.Name,
			Category:        it.Category,
			OnHand:          onHand,
			EstimatedDemand: it.EstimatedDemand,
			Shortfall:       shortfall,
			Status:          Classify(onHand, it.EstimatedDemand),
		})
	}

	sort.SliceStable(report, func(i, j int) bool {
		a, b := report[i], report[j]
		if ra, rb := severityRank(a.Status), severityRank(b.Status); ra != rb {
			return ra < rb
		}
		if a.Shortfall != b.Shortfall {
			return a.Shortfall > b.Shortfall
		}
		return a.ItemID < b.ItemID
	})
	return report
}
