package memory

import (
	"sort"

	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación en memoria de ItemRepository.
type ItemRepo struct {
	s *Store
}

// Create agrega el ítem. Como en la base real, un nombre ya tomado devuelve
// ErrDuplicate para que el caller relea.
func (r *ItemRepo) Create(item *entity.Item) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, it := range r.s.items {
		if it.Name == item.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *item
	r.s.items[item.ID] = &cp
	return nil
}

// GetByID devuelve el ítem o nil si no existe.
func (r *ItemRepo) GetByID(id string) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if it, ok := r.s.items[id]; ok {
		cp := *it
		return &cp, nil
	}
	return nil, nil
}

// GetByName devuelve el ítem por nombre (case-sensitive) o nil.
func (r *ItemRepo) GetByName(name string) (*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, it := range r.s.items {
		if it.Name == name {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve el catálogo ordenado por nombre.
func (r *ItemRepo) List() ([]*entity.Item, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := make([]*entity.Item, 0, len(r.s.items))
	for _, it := range r.s.items {
		cp := *it
		items = append(items, &cp)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// Count cuenta los ítems.
func (r *ItemRepo) Count() (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.items), nil
}

// AddEstimatedDemand incrementa el agregado derivado.
func (r *ItemRepo) AddEstimatedDemand(itemID string, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	it.EstimatedDemand += delta
	return nil
}

// ReduceEstimatedDemand descuenta con clamp en cero.
func (r *ItemRepo) ReduceEstimatedDemand(itemID string, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	it, ok := r.s.items[itemID]
	if !ok {
		return domain.ErrNotFound
	}
	it.EstimatedDemand -= quantity
	if it.EstimatedDemand < 0 {
		it.EstimatedDemand = 0
	}
	return nil
}

// Delete elimina el ítem.
func (r *ItemRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.items, id)
	return nil
}
