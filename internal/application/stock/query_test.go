package stock_test

import (
	"context"
	"testing"

	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
	"github.com/jcastro-ops/inventario-campo/internal/application/stock"
	"github.com/jcastro-ops/inventario-campo/internal/domain"
	"github.com/jcastro-ops/inventario-campo/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalesConsolidadosIgualSumaPorAlmacen(t *testing.T) {
	store := memory.NewStore()
	w1 := newWarehouse(t, store, "Principal")
	w2 := newWarehouse(t, store, "Secundario")
	receiveUC := stock.NewReceiveUseCase(store, store.Warehouses())
	queryUC := stock.NewQueryUseCase(store.Items(), store.Warehouses(), store.Stock())
	ctx := context.Background()

	for _, r := range []dto.ReceiveRequest{
		{Name: "Guantes", Category: "Consumible", WarehouseID: w1.ID, Quantity: 10},
		{Name: "Guantes", Category: "Consumible", WarehouseID: w2.ID, Quantity: 5},
		{Name: "Cuerda", Category: "Equipo", WarehouseID: w2.ID, Quantity: 7},
	} {
		_, err := receiveUC.Receive(ctx, r)
		require.NoError(t, err)
	}

	consolidated, err := queryUC.ConsolidatedTotals(ctx)
	require.NoError(t, err)
	t1, err := queryUC.TotalsForWarehouse(ctx, w1.ID)
	require.NoError(t, err)
	t2, err := queryUC.TotalsForWarehouse(ctx, w2.ID)
	require.NoError(t, err)

	// El consolidado de cada ítem es la suma de sus vistas por almacén.
	for id, total := range consolidated.Totals {
		assert.Equal(t, total, t1.Totals[id]+t2.Totals[id])
	}
}

func TestTotalesAlmacenInexistente(t *testing.T) {
	store := memory.NewStore()
	queryUC := stock.NewQueryUseCase(store.Items(), store.Warehouses(), store.Stock())
	_, err := queryUC.TotalsForWarehouse(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListItemsConStock(t *testing.T) {
	store := memory.NewStore()
	w1 := newWarehouse(t, store, "Principal")
	w2 := newWarehouse(t, store, "Secundario")
	receiveUC := stock.NewReceiveUseCase(store, store.Warehouses())
	queryUC := stock.NewQueryUseCase(store.Items(), store.Warehouses(), store.Stock())
	ctx := context.Background()

	_, err := receiveUC.Receive(ctx, dto.ReceiveRequest{Name: "Casco", Category: "Equipo", WarehouseID: w1.ID, Quantity: 3})
	require.NoError(t, err)
	_, err = receiveUC.Receive(ctx, dto.ReceiveRequest{Name: "Casco", Category: "Equipo", WarehouseID: w2.ID, Quantity: 2})
	require.NoError(t, err)

	// Vista consolidada.
	rows, err := queryUC.ListItems(ctx, "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].OnHand)

	// Vista filtrada a un almacén.
	rows, err = queryUC.ListItems(ctx, w1.ID)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].OnHand)
}

func TestDistribucionOrdenadaPorNombreDeAlmacen(t *testing.T) {
	store := memory.NewStore()
	wb := newWarehouse(t, store, "Bodega Sur")
	wa := newWarehouse(t, store, "Almacén Norte")
	receiveUC := stock.NewReceiveUseCase(store, store.Warehouses())
	queryUC := stock.NewQueryUseCase(store.Items(), store.Warehouses(), store.Stock())
	ctx := context.Background()

	out, err := receiveUC.Receive(ctx, dto.ReceiveRequest{Name: "Linterna", Category: "Equipo", WarehouseID: wb.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = receiveUC.Receive(ctx, dto.ReceiveRequest{Name: "Linterna", Category: "Equipo", WarehouseID: wa.ID, Quantity: 4})
	require.NoError(t, err)

	dist, err := queryUC.Distribution(ctx, out.ID)
	require.NoError(t, err)
	require.Len(t, dist.Rows, 2)
	assert.Equal(t, "Almacén Norte", dist.Rows[0].WarehouseName)
	assert.Equal(t, 4, dist.Rows[0].Quantity)
	assert.Equal(t, "Bodega Sur", dist.Rows[1].WarehouseName)

	_, err = queryUC.Distribution(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDistribucionOmiteCantidadCero(t *testing.T) {
	store := memory.NewStore()
	w := newWarehouse(t, store, "Principal")
	receiveUC := stock.NewReceiveUseCase(store, store.Warehouses())
	queryUC := stock.NewQueryUseCase(store.Items(), store.Warehouses(), store.Stock())
	ctx := context.Background()

	out, err := receiveUC.Receive(ctx, dto.ReceiveRequest{Name: "Hacha", Category: "Herramienta", WarehouseID: w.ID, Quantity: 0})
	require.NoError(t, err)

	dist, err := queryUC.Distribution(ctx, out.ID)
	require.NoError(t, err)
	assert.Empty(t, dist.Rows)
}
