// Package csvfile persiste la hoja semanal de actividades en un CSV plano.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jcastro-ops/inventario-campo/internal/application/usecase"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
)

var _ usecase.ActivityStore = (*ActivityStore)(nil)

// dayOrder orden canónico Lunes→Domingo para presentar la hoja.
var dayOrder = map[string]int{
	"Lunes":     0,
	"Martes":    1,
	"Miércoles": 2,
	"Jueves":    3,
	"Viernes":   4,
	"Sábado":    5,
	"Domingo":   6,
}

// ActivityStore hoja de actividades respaldada por un archivo CSV con
// columnas Día, Actividad y Estado.
type ActivityStore struct {
	path string
}

// NewActivityStore crea el store sobre la ruta dada. El archivo puede no
// existir todavía; Load devuelve una hoja vacía en ese caso.
func NewActivityStore(path string) *ActivityStore {
	return &ActivityStore{path: path}
}

// Load lee la hoja completa, normaliza el día y la devuelve ordenada
// Lunes→Domingo (orden estable dentro de cada día).
func (s *ActivityStore) Load() ([]entity.Activity, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []entity.Activity{}, nil
		}
		return nil, fmt.Errorf("abriendo hoja de actividades: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leyendo hoja de actividades: %w", err)
	}
	if len(records) == 0 {
		return []entity.Activity{}, nil
	}

	var activities []entity.Activity
	for _, rec := range records[1:] {
		if len(rec) < 3 {
			continue
		}
		activities = append(activities, entity.Activity{
			Day:  capitalizeDay(rec[0]),
			Name: strings.TrimSpace(rec[1]),
			Done: parseState(rec[2]),
		})
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return dayRank(activities[i].Day) < dayRank(activities[j].Day)
	})
	return activities, nil
}

// Save reescribe el archivo completo con la hoja dada.
func (s *ActivityStore) Save(activities []entity.Activity) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("escribiendo hoja de actividades: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Día", "Actividad", "Estado"}); err != nil {
		return err
	}
	for _, a := range activities {
		state := "False"
		if a.Done {
			state = "True"
		}
		if err := w.Write([]string{a.Day, a.Name, state}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func dayRank(day string) int {
	if rank, ok := dayOrder[day]; ok {
		return rank
	}
	return len(dayOrder)
}

func capitalizeDay(day string) string {
	day = strings.TrimSpace(day)
	if day == "" {
		return day
	}
	runes := []rune(strings.ToLower(day))
	runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
	return string(runes)
}

func parseState(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "sí", "si", "x":
		return true
	default:
		return false
	}
}
