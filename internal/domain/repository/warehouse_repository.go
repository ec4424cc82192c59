package repository

import "github.com/jcastro-ops/inventario-campo/internal/domain/entity"

// WarehouseRepository define el puerto de persistencia para Warehouse (DIP).
type WarehouseRepository interface {
	Create(warehouse *entity.Warehouse) error
	GetByID(id string) (*entity.Warehouse, error)
	GetByName(name string) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
	Count() (int, error)
	Delete(id string) error
}
