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

// MaterialUseCase casos de uso CRUD para materiales (unidades de trabajo).
type MaterialUseCase struct {
	repo      repository.MaterialRepository
	areaRepo  repository.AreaRepository
	catalogTx CatalogTxRunner
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(
	repo repository.MaterialRepository,
	areaRepo repository.AreaRepository,
	catalogTx CatalogTxRunner,
) *MaterialUseCase {
	return &MaterialUseCase{repo: repo, areaRepo: areaRepo, catalogTx: catalogTx}
}

// Create crea un material dentro de un área existente.
func (uc *MaterialUseCase) Create(ctx context.Context, areaID string, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	area, err := uc.areaRepo.GetByID(areaID)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrNotFound
	}
	material := &entity.Material{
		ID:        uuid.New().String(),
		Name:      name,
		AreaID:    areaID,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// ListByArea lista los materiales de un área.
func (uc *MaterialUseCase) ListByArea(ctx context.Context, areaID string) ([]dto.MaterialResponse, error) {
	area, err := uc.areaRepo.GetByID(areaID)
	if err != nil {
		return nil, err
	}
	if area == nil {
		return nil, domain.ErrNotFound
	}
	materials, err := uc.repo.ListByArea(areaID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, *toMaterialResponse(m))
	}
	return out, nil
}

// Delete elimina el material y sus asignaciones en una transacción,
// descontando la demanda estimada de los ítems que reservaba.
func (uc *MaterialUseCase) Delete(ctx context.Context, materialID string) error {
	return uc.catalogTx.RunCatalog(ctx, func(
		_ repository.AreaRepository,
		materialRepo repository.MaterialRepository,
		_ repository.WarehouseRepository,
		itemRepo repository.ItemRepository,
		_ repository.StockRepository,
		allocRepo repository.AllocationRepository,
	) error {
		material, err := materialRepo.GetByID(materialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		if err := deallocateMaterial(itemRepo, allocRepo, materialID); err != nil {
			return err
		}
		return materialRepo.Delete(materialID)
	})
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{ID: m.ID, AreaID: m.AreaID, Name: m.Name, CreatedAt: m.CreatedAt}
}
