package memory

import (
	"sort"
	"time"

	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación en memoria de StockRepository.
type StockRepo struct {
	s *Store
}

// AddQuantity acumula sobre la fila única (ítem, almacén); el mutex del store
// hace atómica la secuencia crear-o-sumar.
func (r *StockRepo) AddQuantity(itemID, warehouseID string, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := stockKey{itemID: itemID, warehouseID: warehouseID}
	if entry, ok := r.s.stock[key]; ok {
		entry.Quantity += quantity
		entry.UpdatedAt = time.Now()
		return nil
	}
	r.s.stock[key] = &entity.StockEntry{
		ItemID:      itemID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		UpdatedAt:   time.Now(),
	}
	return nil
}

// ConsolidatedTotals devuelve ítem → suma sobre todos los almacenes.
func (r *StockRepo) ConsolidatedTotals() (map[string]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	totals := make(map[string]int)
	for key, entry := range r.s.stock {
		totals[key.itemID] += entry.Quantity
	}
	return totals, nil
}

// TotalsForWarehouse devuelve ítem → cantidad restringido a un almacén.
func (r *StockRepo) TotalsForWarehouse(warehouseID string) (map[string]int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	totals := make(map[string]int)
	for key, entry := range r.s.stock {
		if key.warehouseID == warehouseID {
			totals[key.itemID] = entry.Quantity
		}
	}
	return totals, nil
}

// DistributionByItem devuelve cantidades positivas por almacén, ordenadas por
// nombre de almacén.
func (r *StockRepo) DistributionByItem(itemID string) ([]repository.WarehouseQuantity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var dist []repository.WarehouseQuantity
	for key, entry := range r.s.stock {
		if key.itemID != itemID || entry.Quantity <= 0 {
			continue
		}
		name := key.warehouseID
		if w, ok := r.s.warehouses[key.warehouseID]; ok {
			name = w.Name
		}
		dist = append(dist, repository.WarehouseQuantity{
			WarehouseID:   key.warehouseID,
			WarehouseName: name,
			Quantity:      entry.Quantity,
		})
	}
	sort.Slice(dist, func(i, j int) bool { return dist[i].WarehouseName < dist[j].WarehouseName })
	return dist, nil
}

// DeleteByItem elimina las filas de stock del ítem.
func (r *StockRepo) DeleteByItem(itemID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for key := range r.s.stock {
		if key.itemID == itemID {
			delete(r.s.stock, key)
		}
	}
	return nil
}

// DeleteByWarehouse elimina las filas de stock del almacén.
func (r *StockRepo) DeleteByWarehouse(warehouseID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for key := range r.s.stock {
		if key.warehouseID == warehouseID {
			delete(r.s.stock, key)
		}
	}
	return nil
}
