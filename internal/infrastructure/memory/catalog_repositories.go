package memory

import (
	"sort"

	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)
var _ repository.AreaRepository = (*AreaRepo)(nil)
var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// WarehouseRepo implementación en memoria de WarehouseRepository.
type WarehouseRepo struct {
	s *Store
}

func (r *WarehouseRepo) Create(warehouse *entity.Warehouse) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, w := range r.s.warehouses {
		if w.Name == warehouse.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *warehouse
	r.s.warehouses[warehouse.ID] = &cp
	return nil
}

func (r *WarehouseRepo) GetByID(id string) (*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if w, ok := r.s.warehouses[id]; ok {
		cp := *w
		return &cp, nil
	}
	return nil, nil
}

func (r *WarehouseRepo) GetByName(name string) (*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, w := range r.s.warehouses {
		if w.Name == name {
			cp := *w
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *WarehouseRepo) List() ([]*entity.Warehouse, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	warehouses := make([]*entity.Warehouse, 0, len(r.s.warehouses))
	for _, w := range r.s.warehouses {
		cp := *w
		warehouses = append(warehouses, &cp)
	}
	sort.Slice(warehouses, func(i, j int) bool { return warehouses[i].Name < warehouses[j].Name })
	return warehouses, nil
}

func (r *WarehouseRepo) Count() (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.warehouses), nil
}

func (r *WarehouseRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.warehouses[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.warehouses, id)
	return nil
}

// AreaRepo implementación en memoria de AreaRepository.
type AreaRepo struct {
	s *Store
}

func (r *AreaRepo) Create(area *entity.Area) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.areas {
		if a.Name == area.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *area
	r.s.areas[area.ID] = &cp
	return nil
}

func (r *AreaRepo) GetByID(id string) (*entity.Area, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if a, ok := r.s.areas[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *AreaRepo) List() ([]*entity.Area, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	areas := make([]*entity.Area, 0, len(r.s.areas))
	for _, a := range r.s.areas {
		cp := *a
		areas = append(areas, &cp)
	}
	sort.Slice(areas, func(i, j int) bool { return areas[i].Name < areas[j].Name })
	return areas, nil
}

func (r *AreaRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.areas[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.areas, id)
	return nil
}

// MaterialRepo implementación en memoria de MaterialRepository.
type MaterialRepo struct {
	s *Store
}

func (r *MaterialRepo) Create(material *entity.Material) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *material
	r.s.materials[material.ID] = &cp
	return nil
}

func (r *MaterialRepo) GetByID(id string) (*entity.Material, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if m, ok := r.s.materials[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (r *MaterialRepo) ListByArea(areaID string) ([]*entity.Material, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var materials []*entity.Material
	for _, m := range r.s.materials {
		if m.AreaID == areaID {
			cp := *m
			materials = append(materials, &cp)
		}
	}
	sort.Slice(materials, func(i, j int) bool { return materials[i].Name < materials[j].Name })
	return materials, nil
}

func (r *MaterialRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.materials[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.materials, id)
	return nil
}
