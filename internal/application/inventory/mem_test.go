package inventory_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jhoicas/bodegas-api/internal/application/inventory"
	"github.com/jhoicas/bodegas-api/internal/domain"
	"github.com/jhoicas/bodegas-api/internal/domain/entity"
	"github.com/jhoicas/bodegas-api/internal/domain/repository"
)

var errBoom = errors.New("boom")

type invKey struct{ warehouse, product int64 }

// memState libro de inventario en memoria.
type memState struct {
	users      map[int64]bool
	products   map[int64]*entity.Product
	warehouses map[int64]*entity.Warehouse
	rows       map[invKey]entity.InventoryRecord
	history    []entity.TransferRecord
	nextID     int64
}

func (s *memState) clone() *memState {
	c := *s
	c.rows = make(map[invKey]entity.InventoryRecord, len(s.rows))
	for k, v := range s.rows {
		c.rows[k] = v
	}
	c.history = append([]entity.TransferRecord(nil), s.history...)
	return &c
}

// memStore TxRunner en memoria: una transacción a la vez, restaura el estado si fn falla.
type memStore struct {
	mu     sync.Mutex
	state  *memState
	failOn string // "increment", "decrement" o "history"
	runs   int
}

func newMemStore() *memStore {
	return &memStore{state: &memState{
		users:      map[int64]bool{1: true, 2: true},
		products:   map[int64]*entity.Product{1: {ID: 1, Name: "Laptop", Active: true}, 2: {ID: 2, Name: "Teclado", Active: true}},
		warehouses: map[int64]*entity.Warehouse{1: {ID: 1, Name: "Bodega Central"}, 2: {ID: 2, Name: "Bodega Norte"}, 3: {ID: 3, Name: "Bodega Sur"}},
		rows:       map[invKey]entity.InventoryRecord{},
		nextID:     100,
	}}
}

func (m *memStore) set(warehouse, product, qty int64) {
	m.state.nextID++
	m.state.rows[invKey{warehouse, product}] = entity.InventoryRecord{ID: m.state.nextID, WarehouseID: warehouse, ProductID: product, Quantity: qty, CreatedBy: 1}
}

func (m *memStore) qty(warehouse, product int64) (int64, bool) {
	r, ok := m.state.rows[invKey{warehouse, product}]
	return r.Quantity, ok
}

func (m *memStore) Run(ctx context.Context, fn func(repos inventory.Repos) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs++
	if err := ctx.Err(); err != nil {
		return err
	}
	work := m.state.clone()
	r := &memRepos{s: work, failOn: m.failOn}
	repos := inventory.Repos{Products: memProducts{r}, Warehouses: memWarehouses{r}, Users: r, Inventory: r, Transfers: r}
	if err := fn(repos); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.state = work
	return nil
}

type memRepos struct {
	s      *memState
	failOn string
}

type memProducts struct{ *memRepos }

type memWarehouses struct{ *memRepos }

var (
	_ repository.ProductRepository   = memProducts{}
	_ repository.WarehouseRepository = memWarehouses{}
	_ repository.UserRepository      = (*memRepos)(nil)
	_ repository.InventoryRepository = (*memRepos)(nil)
	_ repository.TransferRepository  = (*memRepos)(nil)
)

func (r memProducts) GetActiveByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r memProducts) ListWithTotals(context.Context) ([]repository.ProductStock, error) {
	return nil, nil
}

func (r memWarehouses) GetActiveByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	w, ok := r.s.warehouses[id]
	if !ok || w.DeletedAt != nil {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

func (r memWarehouses) ListActive(context.Context) ([]*entity.Warehouse, error) {
	return nil, nil
}

func (r *memRepos) Exists(_ context.Context, id int64) (bool, error) {
	return r.s.users[id], nil
}

func (r *memRepos) GetForUpdate(_ context.Context, warehouseID, productID int64) (*entity.InventoryRecord, error) {
	rec, ok := r.s.rows[invKey{warehouseID, productID}]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *memRepos) Increment(_ context.Context, warehouseID, productID, delta, actorID int64) (*entity.InventoryRecord, bool, error) {
	if r.failOn == "increment" {
		return nil, false, errBoom
	}
	k := invKey{warehouseID, productID}
	rec, ok := r.s.rows[k]
	now := time.Now()
	if ok {
		rec.Quantity += delta
		rec.UpdatedBy = &actorID
		rec.UpdatedAt = now
	} else {
		r.s.nextID++
		rec = entity.InventoryRecord{ID: r.s.nextID, WarehouseID: warehouseID, ProductID: productID, Quantity: delta, CreatedBy: actorID, CreatedAt: now, UpdatedAt: now}
	}
	r.s.rows[k] = rec
	return &rec, !ok, nil
}

func (r *memRepos) Decrement(_ context.Context, id, delta, actorID int64) (*entity.InventoryRecord, error) {
	if r.failOn == "decrement" {
		return nil, errBoom
	}
	for k, rec := range r.s.rows {
		if rec.ID != id {
			continue
		}
		if rec.Quantity < delta {
			return nil, domain.ErrConflict
		}
		rec.Quantity -= delta
		rec.UpdatedBy = &actorID
		r.s.rows[k] = rec
		return &rec, nil
	}
	return nil, domain.ErrConflict
}

func (r *memRepos) Create(_ context.Context, rec *entity.TransferRecord) error {
	if r.failOn == "history" {
		return errBoom
	}
	r.s.nextID++
	rec.ID = r.s.nextID
	r.s.history = append(r.s.history, *rec)
	return nil
}

// countingMetrics registra las observaciones recibidas.
type countingMetrics struct {
	mu       sync.Mutex
	add      []string
	transfer []string
}

func (c *countingMetrics) ObserveAddStock(outcome string, _ int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.add = append(c.add, outcome)
}

func (c *countingMetrics) ObserveTransfer(outcome string, _ int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.transfer = append(c.transfer, outcome)
}
