package importer_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jcastro-ops/inventario-campo/internal/application/importer"
	"github.com/jcastro-ops/inventario-campo/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventario.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeedWarehousesIdempotente(t *testing.T) {
	store := memory.NewStore()
	imp := importer.New(store.Warehouses(), store.Items(), store)
	ctx := context.Background()

	require.NoError(t, imp.SeedWarehouses(ctx))
	first, err := store.Warehouses().List()
	require.NoError(t, err)
	require.NotEmpty(t, first)

	// Segunda corrida: el registro ya no está vacío, no agrega nada.
	require.NoError(t, imp.SeedWarehouses(ctx))
	second, err := store.Warehouses().List()
	require.NoError(t, err)
	assert.Len(t, second, len(first))

	// El almacén principal está entre los sembrados.
	principal, err := store.Warehouses().GetByName(importer.PrincipalWarehouse)
	require.NoError(t, err)
	assert.NotNil(t, principal)
}

func TestImportCSVCargaSnapshot(t *testing.T) {
	store := memory.NewStore()
	imp := importer.New(store.Warehouses(), store.Items(), store)
	ctx := context.Background()

	path := writeCSV(t, "nombre,cantidad,categoria\nGuantes,10,Consumible\nCuerda,4,Equipo\n")
	imported, err := imp.ImportCSV(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, imported)

	item, err := store.Items().GetByName("Guantes")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Consumible", item.Category)
	assert.Equal(t, 0, item.EstimatedDemand)

	// Todo el stock queda en el almacén principal.
	principal, err := store.Warehouses().GetByName(importer.PrincipalWarehouse)
	require.NoError(t, err)
	require.NotNil(t, principal)
	totals, err := store.Stock().TotalsForWarehouse(principal.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, totals[item.ID])
}

func TestImportCSVIgnoraColumnasLegacy(t *testing.T) {
	store := memory.NewStore()
	imp := importer.New(store.Warehouses(), store.Items(), store)

	// consumo_estimado del CSV legacy se descarta: la demanda estimada solo
	// nace de asignaciones.
	path := writeCSV(t, "nombre,cantidad,categoria,consumo_estimado\nCasco,3,Activo,99\n")
	imported, err := imp.ImportCSV(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 1, imported)

	item, err := store.Items().GetByName("Casco")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, 0, item.EstimatedDemand)
}

func TestImportCSVOmiteSiHayDatos(t *testing.T) {
	store := memory.NewStore()
	imp := importer.New(store.Warehouses(), store.Items(), store)
	ctx := context.Background()

	path := writeCSV(t, "nombre,cantidad,categoria\nGuantes,10,Consumible\n")
	imported, err := imp.ImportCSV(ctx, path)
	require.NoError(t, err)
	require.Equal(t, 1, imported)

	// El catálogo ya tiene datos: una segunda importación no hace nada.
	imported, err = imp.ImportCSV(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 0, imported)
}

func TestImportCSVArchivoInexistente(t *testing.T) {
	store := memory.NewStore()
	imp := importer.New(store.Warehouses(), store.Items(), store)

	imported, err := imp.ImportCSV(context.Background(), filepath.Join(t.TempDir(), "no-existe.csv"))
	require.NoError(t, err)
	assert.Equal(t, 0, imported)
}
