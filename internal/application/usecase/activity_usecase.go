package usecase

import (
	"context"

	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
)

// ActivityStore puerto para la hoja semanal de actividades (CSV plano).
type ActivityStore interface {
	Load() ([]entity.Activity, error)
	Save(activities []entity.Activity) error
}

// ActivityUseCase lista y actualiza la hoja semanal de actividades.
// No tiene relación con el ledger de stock.
type ActivityUseCase struct {
	store ActivityStore
}

// NewActivityUseCase construye el caso de uso.
func NewActivityUseCase(store ActivityStore) *ActivityUseCase {
	return &ActivityUseCase{store: store}
}

// List devuelve la hoja ordenada Lunes→Domingo.
func (uc *ActivityUseCase) List(ctx context.Context) ([]dto.ActivityRow, error) {
	activities, err := uc.store.Load()
	if err != nil {
		return nil, err
	}
	rows := make([]dto.ActivityRow, 0, len(activities))
	for _, a := range activities {
		rows = append(rows, dto.ActivityRow{Day: a.Day, Name: a.Name, Done: a.Done})
	}
	return rows, nil
}

// UpdateStates aplica los estados en el mismo orden en que List devolvió las
// filas. El largo debe coincidir con la hoja actual.
func (uc *ActivityUseCase) UpdateStates(ctx context.Context, done []bool) error {
	activities, err := uc.store.Load()
	if err != nil {
		return err
	}
	if len(done) != len(activities) {
		return domain.ErrInvalidInput
	}
	for i := range activities {
		activities[i].Done = done[i]
	}
	return uc.store.Save(activities)
}
