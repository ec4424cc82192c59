package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jcastro-ops/inventario-campo/internal/application/allocation"
	"github.com/jcastro-ops/inventario-campo/internal/application/dto"
	"github.com/jcastro-ops/inventario-campo/internal/application/stock"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/domain/projection"
	"github.com/jcastro-ops/inventario-campo/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store         *memory.Store
	warehouse     *entity.Warehouse
	material      *entity.Material
	receiveUC     *stock.ReceiveUseCase
	allocationUC  *allocation.UseCase
	requirementUC *stock.RequirementUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.NewStore()
	w := newWarehouse(t, store, "Principal")
	material := &entity.Material{ID: uuid.New().String(), Name: "Andamio", AreaID: "a1", CreatedAt: time.Now()}
	require.NoError(t, store.Materials().Create(material))
	return &fixture{
		store:         store,
		warehouse:     w,
		material:      material,
		receiveUC:     stock.NewReceiveUseCase(store, store.Warehouses()),
		allocationUC:  allocation.NewUseCase(store, store.Materials(), store.Allocations()),
		requirementUC: stock.NewRequirementUseCase(store.Items(), store.Stock()),
	}
}

func TestReporteCoberturaParcial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.receiveUC.Receive(ctx, dto.ReceiveRequest{
		Name: "Casco", Category: "Activo", WarehouseID: f.warehouse.ID, Quantity: 3,
	})
	require.NoError(t, err)
	_, err = f.allocationUC.Allocate(ctx, f.material.ID, dto.AllocateRequest{ItemID: out.ID, Quantity: 5})
	require.NoError(t, err)

	report, err := f.requirementUC.Report(ctx)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, string(projection.StatusPartial), report[0].Status)
	assert.Equal(t, 2, report[0].Shortfall)
	assert.Equal(t, 3, report[0].OnHand)
	assert.Equal(t, 5, report[0].EstimatedDemand)
}

func TestReporteExcluyeTrasDesasignar(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// Ítem con demanda pero sin stock: aparece CRITICAL.
	out, err := f.receiveUC.Receive(ctx, dto.ReceiveRequest{
		Name: "Cuerda", Category: "Equipo", WarehouseID: f.warehouse.ID, Quantity: 0,
	})
	require.NoError(t, err)
	alloc, err := f.allocationUC.Allocate(ctx, f.material.ID, dto.AllocateRequest{ItemID: out.ID, Quantity: 4})
	require.NoError(t, err)

	report, err := f.requirementUC.Report(ctx)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, string(projection.StatusCritical), report[0].Status)

	// Al desasignar, la demanda vuelve a cero y sin stock el ítem sale del reporte.
	require.NoError(t, f.allocationUC.Deallocate(ctx, alloc.ID))

	report, err = f.requirementUC.Report(ctx)
	require.NoError(t, err)
	assert.Empty(t, report)

	item, err := f.store.Items().GetByID(out.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, item.EstimatedDemand)
}

func TestReporteExcluyeSinDemanda(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.receiveUC.Receive(ctx, dto.ReceiveRequest{
		Name: "Hacha", Category: "Herramienta", WarehouseID: f.warehouse.ID, Quantity: 0,
	})
	require.NoError(t, err)

	report, err := f.requirementUC.Report(ctx)
	require.NoError(t, err)
	assert.Empty(t, report)
}

func TestReportePriorizaPorUrgenciaYFaltante(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// CRITICAL con faltante 9.
	critico, err := f.receiveUC.Receive(ctx, dto.ReceiveRequest{
		Name: "Linterna", Category: "Equipo", WarehouseID: f.warehouse.ID, Quantity: 0,
	})
	require.NoError(t, err)
	_, err = f.allocationUC.Allocate(ctx, f.material.ID, dto.AllocateRequest{ItemID: critico.ID, Quantity: 9})
	require.NoError(t, err)

	// PARTIAL con faltante 2.
	parcial, err := f.receiveUC.Receive(ctx, dto.ReceiveRequest{
		Name: "Casco", Category: "Activo", WarehouseID: f.warehouse.ID, Quantity: 3,
	})
	require.NoError(t, err)
	_, err = f.allocationUC.Allocate(ctx, f.material.ID, dto.AllocateRequest{ItemID: parcial.ID, Quantity: 5})
	require.NoError(t, err)

	// ADEQUATE con demanda cubierta.
	adecuado, err := f.receiveUC.Receive(ctx, dto.ReceiveRequest{
		Name: "Guantes", Category: "Consumible", WarehouseID: f.warehouse.ID, Quantity: 10,
	})
	require.NoError(t, err)
	_, err = f.allocationUC.Allocate(ctx, f.material.ID, dto.AllocateRequest{ItemID: adecuado.ID, Quantity: 6})
	require.NoError(t, err)

	report, err := f.requirementUC.Report(ctx)
	require.NoError(t, err)
	require.Len(t, report, 3)
	assert.Equal(t, critico.ID, report[0].ItemID)
	assert.Equal(t, parcial.ID, report[1].ItemID)
	assert.Equal(t, adecuado.ID, report[2].ItemID)
}
