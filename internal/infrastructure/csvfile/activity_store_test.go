package csvfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/infrastructure/csvfile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrdenaLunesADomingo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actividades.csv")
	content := "Día,Actividad,Estado\nviernes,Inventario,True\nlunes,Limpieza,False\nmiércoles,Compras,True\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	store := csvfile.NewActivityStore(path)
	activities, err := store.Load()
	require.NoError(t, err)
	require.Len(t, activities, 3)

	// Días capitalizados y ordenados.
	assert.Equal(t, "Lunes", activities[0].Day)
	assert.Equal(t, "Miércoles", activities[1].Day)
	assert.Equal(t, "Viernes", activities[2].Day)
	assert.False(t, activities[0].Done)
	assert.True(t, activities[1].Done)
}

func TestLoadArchivoInexistente(t *testing.T) {
	store := csvfile.NewActivityStore(filepath.Join(t.TempDir(), "no-existe.csv"))
	activities, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, activities)
}

func TestSaveYLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "actividades.csv")
	store := csvfile.NewActivityStore(path)

	in := []entity.Activity{
		{Day: "Lunes", Name: "Limpieza", Done: true},
		{Day: "Martes", Name: "Compras", Done: false},
	}
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
