package stock

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

// DefaultCategory categoría asignada cuando la recepción no trae una.
const DefaultCategory = "Sin categoría"

// ReceiveUseCase registra recepciones de stock de forma transaccional.
// Es la única vía que incrementa stock: crea el ítem en la primera recepción
// de un nombre nuevo y acumula sobre la fila única (ítem, almacén).
type ReceiveUseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
}

// NewReceiveUseCase construye el caso de uso.
func NewReceiveUseCase(txRunner TxRunner, warehouseRepo repository.WarehouseRepository) *ReceiveUseCase {
	return &ReceiveUseCase{txRunner: txRunner, warehouseRepo: warehouseRepo}
}

// Receive valida la entrada, resuelve o crea el ítem y suma la cantidad a su
// fila de stock en el almacén indicado. Toda la validación ocurre antes de
// cualquier mutación; un ítem existente con otra categoría aborta con
// ErrCategoryConflict sin efectos.
func (uc *ReceiveUseCase) Receive(ctx context.Context, in dto.ReceiveRequest) (*dto.ItemResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = DefaultCategory
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	warehouse, err := uc.warehouseRepo.GetByID(in.WarehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}

	var out *dto.ItemResponse
	err = uc.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		stockRepo repository.StockRepository,
		_ repository.AllocationRepository,
	) error {
		item, err := itemRepo.GetByName(name)
		if err != nil {
			return err
		}
		if item == nil {
			now := time.Now()
			item = &entity.Item{
				ID:        uuid.New().String(),
				Name:      name,
				Category:  category,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := itemRepo.Create(item); err != nil {
				if !errors.Is(err, domain.ErrDuplicate) {
					return err
				}
				// Otro caller creó el ítem entre la lectura y el insert: la
				// restricción de unicidad lo rechazó, reintentar como lectura.
				if item, err = itemRepo.GetByName(name); err != nil {
					return err
				}
				if item == nil {
					return domain.ErrConstraintViolation
				}
			}
		}
		if item.Category != category {
			return domain.ErrCategoryConflict
		}
		if err := stockRepo.AddQuantity(item.ID, warehouse.ID, in.Quantity); err != nil {
			return err
		}
		out = toItemResponse(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:              item.ID,
		Name:            item.Name,
		Category:        item.Category,
		EstimatedDemand: item.EstimatedDemand,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}
