package repository

import "github.com/jcastro-ops/inventario-campo/internal/domain/entity"

// AllocationRepository define el puerto para el ledger de asignaciones.
// Upsert acumula sobre la fila existente del par (material, ítem) — la
// restricción de unicidad garantiza a lo sumo una fila por par incluso
// bajo creaciones concurrentes.
type AllocationRepository interface {
	Upsert(allocation *entity.Allocation) error
	GetByID(id string) (*entity.Allocation, error)
	ListByMaterial(materialID string) ([]*entity.Allocation, error)
	Delete(id string) error
	DeleteByItem(itemID string) error
	DeleteByMaterial(materialID string) error
}
