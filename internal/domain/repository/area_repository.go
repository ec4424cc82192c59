package repository

import "github.com/jcastro-ops/inventario-campo/internal/domain/entity"

// AreaRepository define el puerto de persistencia para Area (DIP).
type AreaRepository interface {
	Create(area *entity.Area) error
	GetByID(id string) (*entity.Area, error)
	List() ([]*entity.Area, error)
	Delete(id string) error
}
