package memory

import (
	"context"
	"sync"

	"github.com/jcastro-ops/inventario-campo/internal/application/allocation"
	"github.com/jcastro-ops/inventario-campo/internal/application/stock"
	"github.com/jcastro-ops/inventario-campo/internal/application/usecase"
	"github.com/jcastro-ops/inventario-campo/internal/domain/entity"
	"github.com/jcastro-ops/inventario-campo/internal/domain/repository"
)

// Ensure Store implements los puertos transaccionales de la aplicación.
var _ stock.TxRunner = (*Store)(nil)
var _ allocation.TxRunner = (*Store)(nil)
var _ usecase.CatalogTxRunner = (*Store)(nil)

type stockKey struct {
	itemID      string
	warehouseID string
}

// Store almacenamiento en memoria para tests y bancos de prueba del motor.
// Cada operación de repositorio es atómica bajo el mutex del store; el runner
// no implementa rollback (los casos de uso validan antes de mutar).
type Store struct {
	mu          sync.RWMutex
	items       map[string]*entity.Item
	warehouses  map[string]*entity.Warehouse
	stock       map[stockKey]*entity.StockEntry
	allocations map[string]*entity.Allocation
	areas       map[string]*entity.Area
	materials   map[string]*entity.Material
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		items:       make(map[string]*entity.Item),
		warehouses:  make(map[string]*entity.Warehouse),
		stock:       make(map[stockKey]*entity.StockEntry),
		allocations: make(map[string]*entity.Allocation),
		areas:       make(map[string]*entity.Area),
		materials:   make(map[string]*entity.Material),
	}
}

// Items devuelve el repositorio de ítems sobre este store.
func (s *Store) Items() repository.ItemRepository { return &ItemRepo{s: s} }

// Warehouses devuelve el repositorio de almacenes sobre este store.
func (s *Store) Warehouses() repository.WarehouseRepository { return &WarehouseRepo{s: s} }

// Stock devuelve el repositorio de stock sobre este store.
func (s *Store) Stock() repository.StockRepository { return &StockRepo{s: s} }

// Allocations devuelve el repositorio de asignaciones sobre este store.
func (s *Store) Allocations() repository.AllocationRepository { return &AllocationRepo{s: s} }

// Areas devuelve el repositorio de áreas sobre este store.
func (s *Store) Areas() repository.AreaRepository { return &AreaRepo{s: s} }

// Materials devuelve el repositorio de materiales sobre este store.
func (s *Store) Materials() repository.MaterialRepository { return &MaterialRepo{s: s} }

// Run ejecuta fn con los repos del ledger de este store.
func (s *Store) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	stockRepo repository.StockRepository,
	allocRepo repository.AllocationRepository,
) error) error {
	return fn(s.Items(), s.Stock(), s.Allocations())
}

// RunCatalog ejecuta fn con los repos de catálogo y ledger de este store.
func (s *Store) RunCatalog(ctx context.Context, fn func(
	areaRepo repository.AreaRepository,
	materialRepo repository.MaterialRepository,
	warehouseRepo repository.WarehouseRepository,
	itemRepo repository.ItemRepository,
	stockRepo repository.StockRepository,
	allocRepo repository.AllocationRepository,
) error) error {
	return fn(s.Areas(), s.Materials(), s.Warehouses(), s.Items(), s.Stock(), s.Allocations())
}
