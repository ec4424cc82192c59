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

var _ repository.AreaRepository = (*AreaRepo)(nil)

// AreaRepo implementación del puerto AreaRepository sobre PostgreSQL.
type AreaRepo struct {
	q Querier
}

// NewAreaRepository construye el adaptador de persistencia para áreas.
func NewAreaRepository(q Querier) *AreaRepo {
	return &AreaRepo{q: q}
}

// Create persiste un área nueva. El nombre es único.
func (r *AreaRepo) Create(area *entity.Area) error {
	query := `INSERT INTO areas (id, name, created_at) VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query, area.ID, area.Name, area.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert area: %w", err)
	}
	return nil
}

// GetByID obtiene un área por ID. Devuelve nil sin error si no existe.
func (r *AreaRepo) GetByID(id string) (*entity.Area, error) {
	var a entity.Area
	err := r.q.QueryRow(context.Background(), `SELECT id, name, created_at FROM areas WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get area: %w", err)
	}
	return &a, nil
}

// List lista todas las áreas ordenadas por nombre.
func (r *AreaRepo) List() ([]*entity.Area, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name, created_at FROM areas ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list areas: %w", err)
	}
	defer rows.Close()

	var areas []*entity.Area
	for rows.Next() {
		var a entity.Area
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan area: %w", err)
		}
		areas = append(areas, &a)
	}
	return areas, rows.Err()
}

// Delete elimina un área por ID.
func (r *AreaRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM areas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete area: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
