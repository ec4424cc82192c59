package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jcastro-ops/inventario-campo/internal/application/stock"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

// PrincipalWarehouse almacén por defecto donde aterriza el snapshot inicial.
const PrincipalWarehouse = "Almacén PNSR"

// seedWarehouses conjunto fijo de almacenes de aprovisionamiento.
var seedWarehouses = []string{
	PrincipalWarehouse,
	"St Joe's Schack",
	"Almacén Pamplona",
}

// Importer siembra los almacenes fijos y carga el snapshot CSV inicial del
// inventario. Ambas operaciones son idempotentes por chequeo de vacío: si ya
// hay almacenes (o ítems) registrados, no hacen nada.
type Importer struct {
	warehouseRepo repository.WarehouseRepository
	itemRepo      repository.ItemRepository
	txRunner      stock.TxRunner
}

// New construye el importador.
func New(
	warehouseRepo repository.WarehouseRepository,
	itemRepo repository.ItemRepository,
	txRunner stock.TxRunner,
) *Importer {
	return &Importer{warehouseRepo: warehouseRepo, itemRepo: itemRepo, txRunner: txRunner}
}

// SeedWarehouses crea el conjunto fijo de almacenes solo si el registro está vacío.
func (im *Importer) SeedWarehouses(ctx context.Context) error {
	count, err := im.warehouseRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	now := time.Now()
	for _, name := range seedWarehouses {
		w := &entity.Warehouse{ID: uuid.New().String(), Name: name, CreatedAt: now}
		if err := im.warehouseRepo.Create(w); err != nil {
			return fmt.Errorf("seed almacén %q: %w", name, err)
		}
	}
	return nil
}

// ImportCSV carga el snapshot inicial desde path solo cuando el catálogo está
// vacío: una fila por ítem (nombre, cantidad, categoría) con toda la cantidad
// en el almacén principal. Columnas extra del CSV legacy se ignoran. Toda la
// carga viaja en una sola transacción.
func (im *Importer) ImportCSV(ctx context.Context, path string) (int, error) {
	count, err := im.itemRepo.Count()
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	rows, err := readSnapshot(f)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	principal, err := im.warehouseRepo.GetByName(PrincipalWarehouse)
	if err != nil {
		return 0, err
	}
	if principal == nil {
		principal = &entity.Warehouse{ID: uuid.New().String(), Name: PrincipalWarehouse, CreatedAt: time.Now()}
		if err := im.warehouseRepo.Create(principal); err != nil {
			return 0, err
		}
	}

	imported := 0
	err = im.txRunner.Run(ctx, func(
		itemRepo repository.ItemRepository,
		stockRepo repository.StockRepository,
		_ repository.AllocationRepository,
	) error {
		now := time.Now()
		for _, row := range rows {
			item := &entity.Item{
				ID:        uuid.New().String(),
				Name:      row.name,
				Category:  row.category,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := itemRepo.Create(item); err != nil {
				return fmt.Errorf("importar ítem %q: %w", row.name, err)
			}
			if err := stockRepo.AddQuantity(item.ID, principal.ID, row.quantity); err != nil {
				return fmt.Errorf("importar stock de %q: %w", row.name, err)
			}
			imported++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return imported, nil
}

type snapshotRow struct {
	name     string
	quantity int
	category string
}

// readSnapshot lee el CSV con cabecera nombre,cantidad,categoria.
func readSnapshot(r io.Reader) ([]snapshotRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("leer CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(strings.ToLower(h))] = i
	}
	nameIdx, ok := col["nombre"]
	if !ok {
		return nil, fmt.Errorf("CSV sin columna nombre")
	}
	qtyIdx, ok := col["cantidad"]
	if !ok {
		return nil, fmt.Errorf("CSV sin columna cantidad")
	}
	catIdx, hasCat := col["categoria"]

	rows := make([]snapshotRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		if nameIdx >= len(rec) || qtyIdx >= len(rec) {
			continue
		}
		name := strings.TrimSpace(rec[nameIdx])
		if name == "" {
			continue
		}
		qty, err := strconv.Atoi(strings.TrimSpace(rec[qtyIdx]))
		if err != nil || qty < 0 {
			return nil, fmt.Errorf("cantidad inválida para %q", name)
		}
		category := stock.DefaultCategory
		if hasCat && catIdx < len(rec) {
			if c := strings.TrimSpace(rec[catIdx]); c != "" {
				category = c
			}
		}
		rows = append(rows, snapshotRow{name: name, quantity: qty, category: category})
	}
	return rows, nil
}
