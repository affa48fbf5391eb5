package store

import (
	"context"
	"sort"
	"sync"

	perrors "inventory-mcp/internal/errors"
)

// MemoryStore implements ProductStore with an in-process map. It is the
// default backend for the stdio transport, where the inventory lives and dies
// with the server process. The mutex keeps individual operations atomic
// should a second session ever share the store.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[int64]Product
	nextID   int64
}

// NewMemoryStore creates an empty in-memory product store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[int64]Product),
		nextID:   1,
	}
}

// Create assigns the next auto-increment ID and stores the product.
func (m *MemoryStore) Create(_ context.Context, name, category string, price float64, stock int32) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	product := Product{
		ID:       m.nextID,
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    stock,
	}
	m.products[product.ID] = product
	m.nextID++
	return &product, nil
}

// FindAll returns every stored product ordered by ID.
func (m *MemoryStore) FindAll(_ context.Context) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(func(Product) bool { return true }), nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (m *MemoryStore) FindByID(_ context.Context, id int64) (*Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	product, ok := m.products[id]
	if !ok {
		return nil, perrors.ErrProductNotFound
	}
	return &product, nil
}

// FindByCategory returns products whose category matches exactly (case-sensitive).
func (m *MemoryStore) FindByCategory(_ context.Context, category string) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(func(p Product) bool { return p.Category == category }), nil
}

// FindByPriceLessThan returns products priced strictly below the threshold.
func (m *MemoryStore) FindByPriceLessThan(_ context.Context, maxPrice float64) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.collect(func(p Product) bool { return p.Price < maxPrice }), nil
}

// Update overwrites the stored record matching the product's ID.
// Returns ErrProductNotFound if no record with that ID exists.
func (m *MemoryStore) Update(_ context.Context, product Product) (*Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[product.ID]; !ok {
		return nil, perrors.ErrProductNotFound
	}
	m.products[product.ID] = product
	return &product, nil
}

// Delete removes the stored record matching the product's ID.
// Returns ErrProductNotFound if no record with that ID exists.
func (m *MemoryStore) Delete(_ context.Context, product Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[product.ID]; !ok {
		return perrors.ErrProductNotFound
	}
	delete(m.products, product.ID)
	return nil
}

// collect returns matching products ordered by ID. Callers must hold the lock.
func (m *MemoryStore) collect(match func(Product) bool) []Product {
	result := make([]Product, 0, len(m.products))
	for _, p := range m.products {
		if match(p) {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
