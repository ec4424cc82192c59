package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

var _ repository.AllocationRepository = (*AllocationRepo)(nil)

// AllocationRepo implementación de AllocationRepository sobre PostgreSQL
// (usable con pool o tx).
type AllocationRepo struct {
	q Querier
}

// NewAllocationRepository construye el adaptador de asignaciones. Pasar pool o tx (Querier).
func NewAllocationRepository(q Querier) *AllocationRepo {
	return &AllocationRepo{q: q}
}

// Upsert inserta la asignación o acumula sobre la fila existente del par
// (material, ítem) en una sola sentencia. Deja en allocation el id y la
// cantidad resultantes (RETURNING).
func (r *AllocationRepo) Upsert(allocation *entity.Allocation) error {
	query := `
		INSERT INTO allocations (id, material_id, item_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (material_id, item_id)
		DO UPDATE SET quantity = allocations.quantity + EXCLUDED.quantity, updated_at = EXCLUDED.updated_at
		RETURNING id, quantity, created_at`
	err := r.q.QueryRow(context.Background(), query,
		allocation.ID, allocation.MaterialID, allocation.ItemID, allocation.Quantity,
		allocation.CreatedAt, allocation.UpdatedAt,
	).Scan(&allocation.ID, &allocation.Quantity, &allocation.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConstraintViolation
		}
		return fmt.Errorf("upsert allocation: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID. Devuelve nil sin error si no existe.
func (r *AllocationRepo) GetByID(id string) (*entity.Allocation, error) {
	query := `
		SELECT id, material_id, item_id, quantity, created_at, updated_at
		FROM allocations WHERE id = $1`
	var a entity.Allocation
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.MaterialID, &a.ItemID, &a.Quantity, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get allocation: %w", err)
	}
	return &a, nil
}

// ListByMaterial lista las asignaciones vivas de un material.
func (r *AllocationRepo) ListByMaterial(materialID string) ([]*entity.Allocation, error) {
	query := `
		SELECT id, material_id, item_id, quantity, created_at, updated_at
		FROM allocations WHERE material_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, materialID)
	if err != nil {
		return nil, fmt.Errorf("list allocations: %w", err)
	}
	defer rows.Close()

	var allocs []*entity.Allocation
	for rows.Next() {
		var a entity.Allocation
		if err := rows.Scan(&a.ID, &a.MaterialID, &a.ItemID, &a.Quantity, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan allocation: %w", err)
		}
		allocs = append(allocs, &a)
	}
	return allocs, rows.Err()
}

// Delete elimina una asignación por ID.
func (r *AllocationRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM allocations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete allocation: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteByItem elimina las asignaciones de un ítem (cascada de delete_item).
func (r *AllocationRepo) DeleteByItem(itemID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM allocations WHERE item_id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("delete allocations by item: %w", err)
	}
	return nil
}

// DeleteByMaterial elimina las asignaciones de un material (cascada de catálogo).
func (r *AllocationRepo) DeleteByMaterial(materialID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM allocations WHERE material_id = $1`, materialID)
	if err != nil {
		return fmt.Errorf("delete allocations by material: %w", err)
	}
	return nil
}
