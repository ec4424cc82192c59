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

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador de ítems. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// Create persiste un ítem nuevo. ON CONFLICT DO NOTHING mantiene viva la
// transacción cuando otro caller ganó la carrera por el nombre: en ese caso
// devuelve ErrDuplicate para que el caller relea en vez de abortar.
func (r *ItemRepo) Create(item *entity.Item) error {
	query := `
		INSERT INTO items (id, name, category, estimated_demand, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (name) DO NOTHING`
	cmd, err := r.q.Exec(context.Background(), query,
		item.ID, item.Name, item.Category, item.EstimatedDemand, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrDuplicate
	}
	return nil
}

// GetByID obtiene un ítem por ID. Devuelve nil sin error si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	query := `
		SELECT id, name, category, estimated_demand, created_at, updated_at
		FROM items WHERE id = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, id))
}

// GetByName obtiene un ítem por nombre (único, case-sensitive).
func (r *ItemRepo) GetByName(name string) (*entity.Item, error) {
	query := `
		SELECT id, name, category, estimated_demand, created_at, updated_at
		FROM items WHERE name = $1`
	return r.scanOne(r.q.QueryRow(context.Background(), query, name))
}

// List lista el catálogo ordenado por nombre.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	query := `
		SELECT id, name, category, estimated_demand, created_at, updated_at
		FROM items ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []*entity.Item
	for rows.Next() {
		var it entity.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.EstimatedDemand, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}

// Count cuenta los ítems del catálogo (chequeo de vacío del importador).
func (r *ItemRepo) Count() (int, error) {
	var count int
	err := r.q.QueryRow(context.Background(), `SELECT count(*) FROM items`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

// AddEstimatedDemand incrementa el agregado derivado en una sola sentencia.
func (r *ItemRepo) AddEstimatedDemand(itemID string, delta int) error {
	query := `
		UPDATE items SET estimated_demand = estimated_demand + $2, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, itemID, delta)
	if err != nil {
		return fmt.Errorf("add estimated demand: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ReduceEstimatedDemand descuenta con clamp en cero: GREATEST protege contra
// inconsistencias previas, la demanda nunca queda negativa.
func (r *ItemRepo) ReduceEstimatedDemand(itemID string, quantity int) error {
	query := `
		UPDATE items SET estimated_demand = GREATEST(0, estimated_demand - $2), updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, itemID, quantity)
	if err != nil {
		return fmt.Errorf("reduce estimated demand: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un ítem por ID.
func (r *ItemRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ItemRepo) scanOne(row pgx.Row) (*entity.Item, error) {
	var it entity.Item
	err := row.Scan(&it.ID, &it.Name, &it.Category, &it.EstimatedDemand, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &it, nil
}
