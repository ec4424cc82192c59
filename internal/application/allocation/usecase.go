package allocation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

// UseCase mantiene el ledger de asignaciones y, con él, el agregado derivado
// EstimatedDemand de cada ítem. Invariante: la demanda estimada de un ítem es
// siempre la suma de sus asignaciones vivas, mantenida incrementalmente en
// cada alta, acumulación y baja — nunca recalculada desde cero.
type UseCase struct {
	txRunner     TxRunner
	materialRepo repository.MaterialRepository
	allocRepo    repository.AllocationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRunner TxRunner,
	materialRepo repository.MaterialRepository,
	allocRepo repository.AllocationRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, materialRepo: materialRepo, allocRepo: allocRepo}
}

// Allocate reserva cantidad de un ítem para un material. Si ya existe una
// asignación para el par (material, ítem) acumula sobre ella; en ambos casos
// incrementa la demanda estimada del ítem en la misma transacción.
func (uc *UseCase) Allocate(ctx context.Context, materialID string, in dto.AllocateRequest) (*dto.AllocationResponse, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	material, err := uc.materialRepo.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}

	var out *dto.AllocationResponse
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		_ repository.StockRepository,
		allocRepo repository.AllocationRepository,
	) error {
		item, err := itemRepo.GetByID(in.ItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		alloc := &entity.Allocation{
			ID:         uuid.New().String(),
			MaterialID: materialID,
			ItemID:     in.ItemID,
			Quantity:   in.Quantity,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		// Upsert acumula sobre la fila existente del par y deja en alloc el
		// id y la cantidad resultantes.
		if err := allocRepo.Upsert(alloc); err != nil {
			return err
		}
		if err := itemRepo.AddEstimatedDemand(in.ItemID, in.Quantity); err != nil {
			return err
		}
		out = toAllocationResponse(alloc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Deallocate elimina una asignación y descuenta su cantidad de la demanda
// estimada del ítem, con clamp en cero: la demanda nunca queda negativa
// aunque exista una inconsistencia previa.
func (uc *UseCase) Deallocate(ctx context.Context, allocationID string) error {
	return uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		_ repository.StockRepository,
		allocRepo repository.AllocationRepository,
	) error {
		alloc, err := allocRepo.GetByID(allocationID)
		if err != nil {
			return err
		}
		if alloc == nil {
			return domain.ErrNotFound
		}
		if err := itemRepo.ReduceEstimatedDemand(alloc.ItemID, alloc.Quantity); err != nil {
			return err
		}
		return allocRepo.Delete(alloc.ID)
	})
}

// ListByMaterial lista las asignaciones vivas de un material.
func (uc *UseCase) ListByMaterial(ctx context.Context, materialID string) ([]dto.AllocationResponse, error) {
	material, err := uc.materialRepo.GetByID(materialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	allocs, err := uc.allocRepo.ListByMaterial(materialID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AllocationResponse, 0, len(allocs))
	for _, a := range allocs {
		out = append(out, *toAllocationResponse(a))
	}
	return out, nil
}

func toAllocationResponse(a *entity.Allocation) *dto.AllocationResponse {
	return &dto.AllocationResponse{
		ID:         a.ID,
		MaterialID: a.MaterialID,
		ItemID:     a.ItemID,
		Quantity:   a.Quantity,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
