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

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implementación del puerto MaterialRepository sobre PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository construye el adaptador de persistencia para materiales.
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

// Create persiste un material nuevo dentro de su área.
func (r *MaterialRepo) Create(material *entity.Material) error {
	query := `INSERT INTO materials (id, area_id, name, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(context.Background(), query,
		material.ID, material.AreaID, material.Name, material.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID obtiene un material por ID. Devuelve nil sin error si no existe.
func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	var m entity.Material
	err := r.q.QueryRow(context.Background(),
		`SELECT id, area_id, name, created_at FROM materials WHERE id = $1`, id).
		Scan(&m.ID, &m.AreaID, &m.Name, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// ListByArea lista los materiales de un área ordenados por nombre.
func (r *MaterialRepo) ListByArea(areaID string) ([]*entity.Material, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, area_id, name, created_at FROM materials WHERE area_id = $1 ORDER BY name`, areaID)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()

	var materials []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.AreaID, &m.Name, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		materials = append(materials, &m)
	}
	return materials, rows.Err()
}

// Delete elimina un material por ID.
func (r *MaterialRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
