// Package store provides an interface for product storage operations.
package store

import (
	"context"
)

// ProductStore is an interface for product storage operations.
// It abstracts the underlying data store, allowing for different implementations (e.g., in-memory, embedded database).
type ProductStore interface {
	// Create assigns a new unique ID, persists the record and returns the
	// stored product including its ID. It never fails for well-formed input;
	// validation happens upstream in the tool façade.
	Create(ctx context.Context, name, category string, price float64, stock int32) (*Product, error)

	// FindAll returns every stored product ordered by ID.
	// Returns an empty slice if no products exist.
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindByCategory returns products whose category is exactly equal to the
	// argument (case-sensitive, no trimming). Returns an empty slice if none match.
	FindByCategory(ctx context.Context, category string) ([]Product, error)

	// FindByPriceLessThan returns products with price strictly below the
	// threshold. Returns an empty slice if none match.
	FindByPriceLessThan(ctx context.Context, maxPrice float64) ([]Product, error)

	// Update overwrites the stored record matching the product's ID with the
	// given field values. Returns ErrProductNotFound if no record with that ID exists.
	Update(ctx context.Context, product Product) (*Product, error)

	// Delete removes the stored record matching the product's ID.
	// Returns ErrProductNotFound if no record with that ID exists.
	Delete(ctx context.Context, product Product) error
}
