package store

import (
	"context"
	"fmt"
)

// sampleProducts is the fixed demo inventory: ten products across four
// categories, loaded once at startup so the tools have data to work with.
var sampleProducts = []Product{
	{Name: "Laptop", Category: "Electronics", Price: 999.99, Stock: 15},
	{Name: "Wireless Mouse", Category: "Electronics", Price: 29.99, Stock: 50},
	{Name: "Mechanical Keyboard", Category: "Electronics", Price: 89.99, Stock: 30},
	{Name: "The Go Programming Language", Category: "Books", Price: 45.99, Stock: 25},
	{Name: "Clean Code", Category: "Books", Price: 39.99, Stock: 20},
	{Name: "T-Shirt", Category: "Clothing", Price: 19.99, Stock: 100},
	{Name: "Jeans", Category: "Clothing", Price: 59.99, Stock: 75},
	{Name: "Coffee Maker", Category: "Appliances", Price: 79.99, Stock: 40},
	{Name: "Blender", Category: "Appliances", Price: 49.99, Stock: 35},
	{Name: "Toaster", Category: "Appliances", Price: 29.99, Stock: 45},
}

// Seed loads the sample inventory into an empty store. A store that already
// holds products (a persistent SQLite file from a previous run) is left
// untouched, so repeated startups do not duplicate records.
func Seed(ctx context.Context, s ProductStore) error {
	existing, err := s.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to inspect store before seeding: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}
	for _, p := range sampleProducts {
		if _, err := s.Create(ctx, p.Name, p.Category, p.Price, p.Stock); err != nil {
			return fmt.Errorf("failed to seed product %q: %w", p.Name, err)
		}
	}
	return nil
}
