package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jcastro-ops/inventario-campo/internal/application/allocation"
	"github.com/jcastro-ops/inventario-campo/internal/application/stock"
	"github.com/jcastro-ops/inventario-campo/internal/application/usecase"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

// Ensure TxRunner implements los puertos transaccionales de la aplicación.
var _ stock.TxRunner = (*TxRunner)(nil)
var _ allocation.TxRunner = (*TxRunner)(nil)
var _ usecase.CatalogTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos del ledger atados a la tx
// y hace Commit o Rollback. Nada parcial queda visible para otros callers.
func (r *TxRunner) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	stockRepo repository.StockRepository,
	allocRepo repository.AllocationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	itemRepo := NewItemRepository(tx)
	stockRepo := NewStockRepository(tx)
	allocRepo := NewAllocationRepository(tx)

	if err := fn(itemRepo, stockRepo, allocRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCatalog inicia una transacción con los repos de catálogo además de los
// del ledger (para cascadas de áreas, materiales y almacenes).
func (r *TxRunner) RunCatalog(ctx context.Context, fn func(
	areaRepo repository.AreaRepository,
	materialRepo repository.MaterialRepository,
	warehouseRepo repository.WarehouseRepository,
	itemRepo repository.ItemRepository,
	stockRepo repository.StockRepository,
	allocRepo repository.AllocationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	areaRepo := NewAreaRepository(tx)
	materialRepo := NewMaterialRepository(tx)
	warehouseRepo := NewWarehouseRepository(tx)
	itemRepo := NewItemRepository(tx)
	stockRepo := NewStockRepository(tx)
	allocRepo := NewAllocationRepository(tx)

	if err := fn(areaRepo, materialRepo, warehouseRepo, itemRepo, stockRepo, allocRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
