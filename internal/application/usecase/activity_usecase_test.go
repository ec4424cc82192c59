package usecase_test

import (
	"context"
	"testing"

	"github.com/jcastro-ops/inventario-campo/internal/application/usecase"
	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeActivityStore hoja en memoria para los tests del caso de uso.
type fakeActivityStore struct {
	activities []entity.Activity
}

func (s *fakeActivityStore) Load() ([]entity.Activity, error) {
	out := make([]entity.Activity, len(s.activities))
	copy(out, s.activities)
	return out, nil
}

func (s *fakeActivityStore) Save(activities []entity.Activity) error {
	s.activities = activities
	return nil
}

func TestActivityUpdateStates(t *testing.T) {
	store := &fakeActivityStore{activities: []entity.Activity{
		{Day: "Lunes", Name: "Limpieza", Done: false},
		{Day: "Martes", Name: "Compras", Done: false},
	}}
	uc := usecase.NewActivityUseCase(store)
	ctx := context.Background()

	require.NoError(t, uc.UpdateStates(ctx, []bool{true, false}))

	rows, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.True(t, rows[0].Done)
	assert.False(t, rows[1].Done)
}

func TestActivityUpdateStatesLargoDistinto(t *testing.T) {
	store := &fakeActivityStore{activities: []entity.Activity{
		{Day: "Lunes", Name: "Limpieza", Done: false},
	}}
	uc := usecase.NewActivityUseCase(store)

	err := uc.UpdateStates(context.Background(), []bool{true, false})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
