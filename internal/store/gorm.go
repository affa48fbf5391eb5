package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	perrors "inventory-mcp/internal/errors"
)

// GormStore implements ProductStore on an embedded SQLite database via gorm.
// Unlike the in-memory backend it survives server restarts.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a ProductStore backed by the given gorm database and
// ensures the products table exists.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Product{}); err != nil {
		return nil, fmt.Errorf("failed to migrate products table: %w", err)
	}
	return &GormStore{db: db}, nil
}

// Create persists a new product; SQLite assigns the auto-increment ID.
func (g *GormStore) Create(ctx context.Context, name, category string, price float64, stock int32) (*Product, error) {
	product := Product{
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    stock,
	}
	if err := g.db.WithContext(ctx).Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

// FindAll returns every stored product ordered by ID.
func (g *GormStore) FindAll(ctx context.Context) ([]Product, error) {
	var products []Product
	if err := g.db.WithContext(ctx).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find all products: %w", err)
	}
	return products, nil
}

// FindByID retrieves a product by its unique identifier.
// Returns ErrProductNotFound if no product exists with the given ID.
func (g *GormStore) FindByID(ctx context.Context, id int64) (*Product, error) {
	var product Product
	if err := g.db.WithContext(ctx).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, perrors.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to find product by ID: %w", err)
	}
	return &product, nil
}

// FindByCategory returns products whose category matches exactly. SQLite
// string comparison with = is case-sensitive, matching the store contract.
func (g *GormStore) FindByCategory(ctx context.Context, category string) ([]Product, error) {
	var products []Product
	if err := g.db.WithContext(ctx).Where("category = ?", category).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by category: %w", err)
	}
	return products, nil
}

// FindByPriceLessThan returns products priced strictly below the threshold.
func (g *GormStore) FindByPriceLessThan(ctx context.Context, maxPrice float64) ([]Product, error) {
	var products []Product
	if err := g.db.WithContext(ctx).Where("price < ?", maxPrice).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products by price: %w", err)
	}
	return products, nil
}

// Update overwrites the stored record matching the product's ID.
// Returns ErrProductNotFound if no record with that ID exists.
func (g *GormStore) Update(ctx context.Context, product Product) (*Product, error) {
	// Updates with a map so that zero values (price 0, stock 0) are written too.
	tx := g.db.WithContext(ctx).Model(&Product{}).Where("id = ?", product.ID).Updates(map[string]any{
		"name":     product.Name,
		"category": product.Category,
		"price":    product.Price,
		"stock":    product.Stock,
	})
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to update product: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return nil, perrors.ErrProductNotFound
	}
	return &product, nil
}

// Delete removes the stored record matching the product's ID.
// Returns ErrProductNotFound if no record with that ID exists.
func (g *GormStore) Delete(ctx context.Context, product Product) error {
	tx := g.db.WithContext(ctx).Delete(&Product{}, product.ID)
	if tx.Error != nil {
		return fmt.Errorf("failed to delete product: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return perrors.ErrProductNotFound
	}
	return nil
}
