package postgres

import (
	"context"
	"fmt"

	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// AddQuantity acumula cantidad sobre la fila única (ítem, almacén) en una sola
// sentencia: el ON CONFLICT sobre la restricción de unicidad resuelve la
// carrera crear-o-sumar sin leer-luego-escribir en la aplicación.
func (r *StockRepo) AddQuantity(itemID, warehouseID string, quantity int) error {
	query := `
		INSERT INTO stock_entries (item_id, warehouse_id, quantity, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (item_id, warehouse_id)
		DO UPDATE SET quantity = stock_entries.quantity + EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, itemID, warehouseID, quantity)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConstraintViolation
		}
		return fmt.Errorf("add stock: %w", err)
	}
	return nil
}

// ConsolidatedTotals devuelve ítem → suma de cantidades en todos los almacenes.
// Los ítems sin filas no aparecen en el mapa.
func (r *StockRepo) ConsolidatedTotals() (map[string]int, error) {
	query := `
		SELECT item_id, SUM(quantity) FROM stock_entries GROUP BY item_id`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("consolidated totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var itemID string
		var total int
		if err := rows.Scan(&itemID, &total); err != nil {
			return nil, fmt.Errorf("scan total: %w", err)
		}
		totals[itemID] = total
	}
	return totals, rows.Err()
}

// TotalsForWarehouse devuelve ítem → cantidad restringido a un almacén.
func (r *StockRepo) TotalsForWarehouse(warehouseID string) (map[string]int, error) {
	query := `
		SELECT item_id, quantity FROM stock_entries WHERE warehouse_id = $1`
	rows, err := r.q.Query(context.Background(), query, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("totals for warehouse: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]int)
	for rows.Next() {
		var itemID string
		var qty int
		if err := rows.Scan(&itemID, &qty); err != nil {
			return nil, fmt.Errorf("scan quantity: %w", err)
		}
		totals[itemID] = qty
	}
	return totals, rows.Err()
}

// DistributionByItem devuelve las cantidades positivas de un ítem por almacén,
// ordenadas por nombre de almacén ascendente.
func (r *StockRepo) DistributionByItem(itemID string) ([]repository.WarehouseQuantity, error) {
	query := `
		SELECT s.warehouse_id, w.name, s.quantity
		FROM stock_entries s
		JOIN warehouses w ON w.id = s.warehouse_id
		WHERE s.item_id = $1 AND s.quantity > 0
		ORDER BY w.name`
	rows, err := r.q.Query(context.Background(), query, itemID)
	if err != nil {
		return nil, fmt.Errorf("distribution: %w", err)
	}
	defer rows.Close()

	var dist []repository.WarehouseQuantity
	for rows.Next() {
		var wq repository.WarehouseQuantity
		if err := rows.Scan(&wq.WarehouseID, &wq.WarehouseName, &wq.Quantity); err != nil {
			return nil, fmt.Errorf("scan distribution: %w", err)
		}
		dist = append(dist, wq)
	}
	return dist, rows.Err()
}

// DeleteByItem elimina todas las filas de stock de un ítem (cascada).
func (r *StockRepo) DeleteByItem(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_entries WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete stock by item: %w", err)
	}
	return nil
}

// DeleteByWarehouse elimina todas las filas de stock de un almacén (cascada).
func (r *StockRepo) DeleteByWarehouse(warehouseID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_entries WHERE warehouse_id = $1`, warehouseID)
	if err != nil {
		return fmt.Errorf("delete stock by warehouse: %w", err)
	}
	return nil
}
