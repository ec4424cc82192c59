package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

// AreaUseCase casos de uso CRUD para áreas de campaña.
type AreaUseCase struct {
	repo      repository.AreaRepository
	catalogTx CatalogTxRunner
}

// NewAreaUseCase construye el caso de uso.
func NewAreaUseCase(repo repository.AreaRepository, catalogTx CatalogTxRunner) *AreaUseCase {
	return &AreaUseCase{repo: repo, catalogTx: catalogTx}
}

// Create crea un área nueva. El nombre es único.
func (uc *AreaUseCase) Create(ctx context.Context, in dto.CreateAreaRequest) (*dto.AreaResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	area := &entity.Area{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(area); err != nil {
		return nil, err
	}
	return toAreaResponse(area), nil
}

// List lista todas las áreas.
func (uc *AreaUseCase) List(ctx context.Context) ([]dto.AreaResponse, error) {
	areas, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.AreaResponse, 0, len(areas))
	for _, a := range areas {
		out = append(out, *toAreaResponse(a))
	}
	return out, nil
}

// Delete elimina el área con cascada transaccional: cada material del área se
// da de baja junto con sus asignaciones, descontando la demanda estimada de
// los ítems afectados.
func (uc *AreaUseCase) Delete(ctx context.Context, areaID string) error {
	return uc.catalogTx.RunCatalog(ctx, func(
		areaRepo repository.AreaRepository,
		materialRepo repository.MaterialRepository,
		_ repository.WarehouseRepository,
		itemRepo repository.ItemRepository,
		_ repository.StockRepository,
		allocRepo repository.AllocationRepository,
	) error {
		area, err := areaRepo.GetByID(areaID)
		if err != nil {
			return err
		}
		if area == nil {
			return domain.ErrNotFound
		}
		materials, err := materialRepo.ListByArea(areaID)
		if err != nil {
			return err
		}
		for _, m := range materials {
			if err := deallocateMaterial(itemRepo, allocRepo, m.ID); err != nil {
				return err
			}
			if err := materialRepo.Delete(m.ID); err != nil {
				return err
			}
		}
		return areaRepo.Delete(areaID)
	})
}

func toAreaResponse(a *entity.Area) *dto.AreaResponse {
	return &dto.AreaResponse{ID: a.ID, Name: a.Name, CreatedAt: a.CreatedAt}
}
