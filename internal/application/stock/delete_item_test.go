package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jcastro-ops/inventario-campo/internal/application/allocation"
	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
	"github.com/jcastro-ops/inventario-campo/internal/application/stock"
	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteItemCascada(t *testing.T) {
	store := memory.NewStore()
	w := newWarehouse(t, store, "Principal")
	receiveUC := stock.NewReceiveUseCase(store, store.Warehouses())

	out, err := receiveUC.Receive(context.Background(), dto.ReceiveRequest{
		Name: "Cuerda", Category: "Equipo", WarehouseID: w.ID, Quantity: 8,
	})
	require.NoError(t, err)

	// Una asignación viva que referencia al ítem.
	material := &entity.Material{ID: uuid.New().String(), Name: "Andamio", AreaID: "a1", CreatedAt: time.Now()}
	require.NoError(t, store.Materials().Create(material))
	allocUC := allocation.NewUseCase(store, store.Materials(), store.Allocations())
	alloc, err := allocUC.Allocate(context.Background(), material.ID, dto.AllocateRequest{ItemID: out.ID, Quantity: 3})
	require.NoError(t, err)

	deleteUC := stock.NewDeleteItemUseCase(store)
	require.NoError(t, deleteUC.Delete(context.Background(), out.ID))

	// Ítem, stock y asignaciones desaparecen juntos.
	item, err := store.Items().GetByID(out.ID)
	require.NoError(t, err)
	assert.Nil(t, item)

	totals, err := store.Stock().ConsolidatedTotals()
	require.NoError(t, err)
	assert.NotContains(t, totals, out.ID)

	got, err := store.Allocations().GetByID(alloc.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeleteItemInexistente(t *testing.T) {
	store := memory.NewStore()
	deleteUC := stock.NewDeleteItemUseCase(store)
	err := deleteUC.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
