package memory

import (
	"sort"
	"time"

	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

var _ repository.AllocationRepository = (*AllocationRepo)(nil)

// AllocationRepo implementación en memoria de AllocationRepository.
type AllocationRepo struct {
	s *Store
}

// Upsert acumula sobre la fila existente del par (material, ítem) y deja en
// allocation el id y la cantidad resultantes, como el RETURNING de la base real.
func (r *AllocationRepo) Upsert(allocation *entity.Allocation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.allocations {
		if a.MaterialID == allocation.MaterialID && a.ItemID == allocation.ItemID {
			a.Quantity += allocation.Quantity
			a.UpdatedAt = time.Now()
			allocation.ID = a.ID
			allocation.Quantity = a.Quantity
			allocation.CreatedAt = a.CreatedAt
			return nil
		}
	}
	cp := *allocation
	r.s.allocations[allocation.ID] = &cp
	return nil
}

// GetByID devuelve la asignación o nil si no existe.
func (r *AllocationRepo) GetByID(id string) (*entity.Allocation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if a, ok := r.s.allocations[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

// ListByMaterial lista las asignaciones de un material.
func (r *AllocationRepo) ListByMaterial(materialID string) ([]*entity.Allocation, error) {
	return r.listWhere(func(a *entity.Allocation) bool { return a.MaterialID == materialID })
}

// Delete elimina una asignación por ID.
func (r *AllocationRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.allocations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.allocations, id)
	return nil
}

// DeleteByItem elimina las asignaciones del ítem.
func (r *AllocationRepo) DeleteByItem(itemID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, a := range r.s.allocations {
		if a.ItemID == itemID {
			delete(r.s.allocations, id)
		}
	}
	return nil
}

// DeleteByMaterial elimina las asignaciones del material.
func (r *AllocationRepo) DeleteByMaterial(materialID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for id, a := range r.s.allocations {
		if a.MaterialID == materialID {
			delete(r.s.allocations, id)
		}
	}
	return nil
}

func (r *AllocationRepo) listWhere(match func(*entity.Allocation) bool) ([]*entity.Allocation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var allocs []*entity.Allocation
	for _, a := range r.s.allocations {
		if match(a) {
			cp := *a
			allocs = append(allocs, &cp)
		}
	}
	sort.Slice(allocs, func(i, j int) bool { return allocs[i].CreatedAt.Before(allocs[j].CreatedAt) })
	return allocs, nil
}
