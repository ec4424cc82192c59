package repository

import "github.com/jcastro-ops/inventario-campo/internal/domain/entity"

// ItemRepository define el puerto de persistencia para Item (DIP).
// AddEstimatedDemand y ReduceEstimatedDemand mantienen el agregado derivado
// de forma incremental; Reduce aplica el clamp en cero (nunca negativo).
type ItemRepository interface {
	Create(item *entity.Item) error
	GetByID(id string) (*entity.Item, error)
	GetByName(name string) (*entity.Item, error)
	List() ([]*entity.Item, error)
	Count() (int, error)
	AddEstimatedDemand(itemID string, delta int) error
	ReduceEstimatedDemand(itemID string, quantity int) error
	Delete(id string) error
}
