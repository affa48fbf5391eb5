// Package service implements the inventory tool façade: six operations that
// validate their parameters, call the product store and format human-readable
// text responses for a calling AI assistant.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"

	perrors "inventory-mcp/internal/errors"
	"inventory-mcp/internal/store"
)

// InventoryService defines the tool operations exposed to the MCP transport.
// Every operation returns a single formatted text string; validation failures
// and missing products are reported inside that string (prefixed with
// "Error:"), never as a structured error. The returned Go error is reserved
// for store failures, which fail the whole tool call.
type InventoryService interface {
	// GetAllProducts lists every product in the inventory.
	GetAllProducts(ctx context.Context) (string, error)

	// SearchByCategory lists products whose category matches exactly
	// (case-sensitive, no trimming).
	SearchByCategory(ctx context.Context, category string) (string, error)

	// FindProductsUnderPrice lists products priced strictly below maxPrice.
	FindProductsUnderPrice(ctx context.Context, maxPrice float64) (string, error)

	// AddProduct validates the fields in order (name, category, price, stock),
	// short-circuits on the first failure and otherwise creates the product.
	AddProduct(ctx context.Context, name, category string, price float64, stock int32) (string, error)

	// UpdateProduct overwrites all four fields of the product with the given ID.
	UpdateProduct(ctx context.Context, id int64, name, category string, price float64, stock int32) (string, error)

	// DeleteProduct removes the product with the given ID. Hard delete.
	DeleteProduct(ctx context.Context, id int64) (string, error)
}

var _ InventoryService = (*Service)(nil)

// Service implements InventoryService on top of a ProductStore.
type Service struct {
	store    store.ProductStore
	validate *validator.Validate
	logger   *slog.Logger
}

// NewService creates the tool façade with the provided store.
func NewService(s store.ProductStore, logger *slog.Logger) *Service {
	return &Service{
		store:    s,
		validate: newValidator(),
		logger:   logger.With("component", "inventory"),
	}
}

// addProductArgs carries the create-time constraints. Field order matters:
// the validator reports failures in declaration order, which gives the
// contracted name -> category -> price -> stock short-circuit.
type addProductArgs struct {
	Name     string  `validate:"notblank"`
	Category string  `validate:"notblank"`
	Price    float64 `validate:"gte=0"`
	Stock    int32   `validate:"gte=0"`
}

// newValidator builds the façade validator with the notblank rule used for
// name and category (empty after trimming counts as empty).
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(fmt.Sprintf("failed to register notblank validation: %v", err))
	}
	return v
}

// validationMessage maps the first failing field to its contracted message.
func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Field() {
	case "Name":
		return "Error: Product name cannot be empty."
	case "Category":
		return "Error: Product category cannot be empty."
	case "Price":
		return "Error: Product price cannot be negative."
	case "Stock":
		return "Error: Product stock cannot be negative."
	default:
		return fmt.Sprintf("Error: Product %s is invalid.", strings.ToLower(fieldErr.Field()))
	}
}

// GetAllProducts lists every product with its full detail block.
func (s *Service) GetAllProducts(ctx context.Context) (string, error) {
	products, err := s.store.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to fetch products: %w", err)
	}
	s.logger.DebugContext(ctx, "Listing products", "count", len(products))

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d products:\n\n", len(products))
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (ID: %d)\n", p.Name, p.ID)
		fmt.Fprintf(&b, "  Category: %s\n", p.Category)
		fmt.Fprintf(&b, "  Price: $%.2f\n", p.Price)
		fmt.Fprintf(&b, "  Stock: %d units\n\n", p.Stock)
	}
	return b.String(), nil
}

// SearchByCategory lists products in the given category. The match is exact
// and case-sensitive; whether that is intentional product behavior is not
// recorded anywhere, so it is preserved as-is.
func (s *Service) SearchByCategory(ctx context.Context, category string) (string, error) {
	products, err := s.store.FindByCategory(ctx, category)
	if err != nil {
		return "", fmt.Errorf("failed to fetch products in category %q: %w", category, err)
	}
	if len(products) == 0 {
		return fmt.Sprintf("No products found in category '%s'.", category), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d products in category '%s':\n\n", len(products), category)
	for _, p := range products {
		fmt.Fprintf(&b, "- %s (ID: %d) - $%.2f - Stock: %d\n", p.Name, p.ID, p.Price, p.Stock)
	}
	return b.String(), nil
}

// FindProductsUnderPrice lists products priced strictly below maxPrice; a
// product priced exactly at the threshold is excluded.
func (s *Service) FindProductsUnderPrice(ctx context.Context, maxPrice float64) (string, error) {
	products, err := s.store.FindByPriceLessThan(ctx, maxPrice)
	if err != nil {
		return "", fmt.Errorf("failed to fetch products under %.2f: %w", maxPrice, err)
	}
	if len(products) == 0 {
		return fmt.Sprintf("No products found under $%.2f.", maxPrice), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d products under $%.2f:\n\n", len(products), maxPrice)
	for _, p := range products {
		fmt.Fprintf(&b, "- %s - $%.2f (%s) - Stock: %d\n", p.Name, p.Price, p.Category, p.Stock)
	}
	return b.String(), nil
}

// AddProduct validates the fields in order and creates the product. A rejected
// add performs no store call at all.
func (s *Service) AddProduct(ctx context.Context, name, category string, price float64, stock int32) (string, error) {
	args := addProductArgs{Name: name, Category: category, Price: price, Stock: stock}
	if err := s.validate.Struct(args); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			msg := validationMessage(validationErrors[0])
			s.logger.WarnContext(ctx, "Rejected product", "field", validationErrors[0].Field())
			return msg, nil
		}
		return "", fmt.Errorf("failed to validate product: %w", err)
	}

	created, err := s.store.Create(ctx, name, category, price, stock)
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}
	s.logger.InfoContext(ctx, "Product created", "ID", created.ID, "Name", created.Name)
	return confirmation("Product added successfully!", created), nil
}

// UpdateProduct overwrites all four fields of an existing product. Partial
// update is not supported. Note the asymmetry with AddProduct: no field
// validation is applied here; the original behavior is preserved because the
// intent behind validate-on-create-only was never stated.
func (s *Service) UpdateProduct(ctx context.Context, id int64, name, category string, price float64, stock int32) (string, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return notFoundMessage(id), nil
		}
		return "", fmt.Errorf("failed to fetch product %d: %w", id, err)
	}

	existing.Name = name
	existing.Category = category
	existing.Price = price
	existing.Stock = stock

	updated, err := s.store.Update(ctx, *existing)
	if err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return notFoundMessage(id), nil
		}
		return "", fmt.Errorf("failed to update product %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "Product updated", "ID", updated.ID, "Name", updated.Name)
	return confirmation("Product updated successfully!", updated), nil
}

// DeleteProduct removes a product by ID. The deletion is unrecoverable.
func (s *Service) DeleteProduct(ctx context.Context, id int64) (string, error) {
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return notFoundMessage(id), nil
		}
		return "", fmt.Errorf("failed to fetch product %d: %w", id, err)
	}

	if err := s.store.Delete(ctx, *existing); err != nil {
		if errors.Is(err, perrors.ErrProductNotFound) {
			return notFoundMessage(id), nil
		}
		return "", fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	s.logger.InfoContext(ctx, "Product deleted", "ID", existing.ID, "Name", existing.Name)
	return fmt.Sprintf("Product '%s' (ID: %d) deleted successfully.", existing.Name, existing.ID), nil
}

// confirmation renders the detail block shared by add and update responses.
func confirmation(header string, p *store.Product) string {
	return fmt.Sprintf("%s\nID: %d\nName: %s\nCategory: %s\nPrice: $%.2f\nStock: %d units",
		header, p.ID, p.Name, p.Category, p.Price, p.Stock)
}

func notFoundMessage(id int64) string {
	return fmt.Sprintf("Error: Product with ID %d not found.", id)
}
