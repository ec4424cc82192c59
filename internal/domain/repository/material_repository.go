package repository

import "github.com/jcastro-ops/inventario-campo/internal/domain/entity"

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	ListByArea(areaID string) ([]*entity.Material, error)
	Delete(id string) error
}
