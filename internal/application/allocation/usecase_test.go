package allocation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jcastro-ops/inventario-campo/internal/application/allocation"
	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*memory.Store, *allocation.UseCase, *entity.Material, *entity.Item) {
	t.Helper()
	store := memory.NewStore()
	material := &entity.Material{ID: uuid.New().String(), Name: "Andamio", AreaID: "a1", CreatedAt: time.Now()}
	require.NoError(t, store.Materials().Create(material))
	now := time.Now()
	item := &entity.Item{ID: uuid.New().String(), Name: "Cuerda", Category: "Equipo", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, store.Items().Create(item))
	return store, allocation.NewUseCase(store, store.Materials(), store.Allocations()), material, item
}

func demandOf(t *testing.T, store *memory.Store, itemID string) int {
	t.Helper()
	item, err := store.Items().GetByID(itemID)
	require.NoError(t, err)
	require.NotNil(t, item)
	return item.EstimatedDemand
}

func TestAllocateIncrementaDemanda(t *testing.T) {
	store, uc, material, item := setup(t)

	out, err := uc.Allocate(context.Background(), material.ID, dto.AllocateRequest{ItemID: item.ID, Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 4, out.Quantity)
	assert.Equal(t, 4, demandOf(t, store, item.ID))
}

func TestAllocateAcumulaSobreParExistente(t *testing.T) {
	store, uc, material, item := setup(t)
	ctx := context.Background()

	first, err := uc.Allocate(ctx, material.ID, dto.AllocateRequest{ItemID: item.ID, Quantity: 4})
	require.NoError(t, err)
	second, err := uc.Allocate(ctx, material.ID, dto.AllocateRequest{ItemID: item.ID, Quantity: 3})
	require.NoError(t, err)

	// Misma fila: a lo sumo una asignación por par (material, ítem).
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 7, second.Quantity)
	assert.Equal(t, 7, demandOf(t, store, item.ID))

	allocs, err := uc.ListByMaterial(ctx, material.ID)
	require.NoError(t, err)
	require.Len(t, allocs, 1)
}

func TestAllocateValidaciones(t *testing.T) {
	_, uc, material, item := setup(t)
	ctx := context.Background()

	_, err := uc.Allocate(ctx, material.ID, dto.AllocateRequest{ItemID: item.ID, Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.Allocate(ctx, material.ID, dto.AllocateRequest{ItemID: item.ID, Quantity: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.Allocate(ctx, "no-existe", dto.AllocateRequest{ItemID: item.ID, Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Allocate(ctx, material.ID, dto.AllocateRequest{ItemID: "no-existe", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeallocateDescuentaDemanda(t *testing.T) {
	store, uc, material, item := setup(t)
	ctx := context.Background()

	alloc, err := uc.Allocate(ctx, material.ID, dto.AllocateRequest{ItemID: item.ID, Quantity: 5})
	require.NoError(t, err)

	require.NoError(t, uc.Deallocate(ctx, alloc.ID))
	assert.Equal(t, 0, demandOf(t, store, item.ID))

	got, err := store.Allocations().GetByID(alloc.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Una segunda baja sobre el mismo id es NotFound.
	assert.ErrorIs(t, uc.Deallocate(ctx, alloc.ID), domain.ErrNotFound)
}

func TestDeallocateClampEnCero(t *testing.T) {
	store, uc, material, item := setup(t)
	ctx := context.Background()

	alloc, err := uc.Allocate(ctx, material.ID, dto.AllocateRequest{ItemID: item.ID, Quantity: 5})
	require.NoError(t, err)

	// Inconsistencia previa simulada: la demanda quedó por debajo de la asignación.
	require.NoError(t, store.Items().ReduceEstimatedDemand(item.ID, 3))
	require.Equal(t, 2, demandOf(t, store, item.ID))

	// La baja descuenta 5 sobre 2: clamp en cero, nunca negativa.
	require.NoError(t, uc.Deallocate(ctx, alloc.ID))
	assert.Equal(t, 0, demandOf(t, store, item.ID))
}

func TestListByMaterialInexistente(t *testing.T) {
	_, uc, _, _ := setup(t)
	_, err := uc.ListByMaterial(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
