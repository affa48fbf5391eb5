// Package mcpserver exposes the inventory tool façade over the Model Context
// Protocol using the official Go SDK. Each tool takes primitive-typed
// parameters and returns a single text content block.
package mcpserver

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"inventory-mcp/internal/service"
)

const serverName = "inventory-mcp"

// handlers adapts the inventory façade to MCP tool handlers.
type handlers struct {
	service service.InventoryService
	logger  *slog.Logger
}

// NewServer builds an MCP server with the six inventory tools registered.
func NewServer(svc service.InventoryService, logger *slog.Logger, version string) *mcp.Server {
	h := &handlers{
		service: svc,
		logger:  logger.With("component", "mcp"),
	}
	srv := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)
	h.register(srv)
	return srv
}

// register is the explicit registration table: operation name, parameter
// schema (inferred from the args struct) and description, bound once at
// process start.
func (h *handlers) register(srv *mcp.Server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name: "getAllProducts",
		Description: "Retrieves all products from the inventory. " +
			"Returns a formatted list of all products with their details " +
			"including ID, name, category, price, and stock quantity.",
	}, h.getAllProducts)

	mcp.AddTool(srv, &mcp.Tool{
		Name: "searchByCategory",
		Description: "Searches for products by category name. " +
			"Returns all products that match the specified category (case-sensitive). " +
			"Common categories include: Electronics, Books, Clothing, Appliances.",
	}, h.searchByCategory)

	mcp.AddTool(srv, &mcp.Tool{
		Name: "findProductsUnderPrice",
		Description: "Finds all products priced below a specified maximum price. " +
			"Useful for finding budget-friendly options or products within a price range. " +
			"Price should be specified as a decimal number (e.g., 50.00).",
	}, h.findProductsUnderPrice)

	mcp.AddTool(srv, &mcp.Tool{
		Name: "addProduct",
		Description: "Adds a new product to the inventory. " +
			"Requires: name (product name), category (product category), price (decimal price), " +
			"and stock (integer quantity). Returns confirmation with the created product details.",
	}, h.addProduct)

	mcp.AddTool(srv, &mcp.Tool{
		Name: "updateProduct",
		Description: "Updates an existing product's information in the inventory. " +
			"Requires the product ID and new values for name, category, price, and stock. " +
			"All fields are required even if only updating one field.",
	}, h.updateProduct)

	mcp.AddTool(srv, &mcp.Tool{
		Name: "deleteProduct",
		Description: "Deletes a product from the inventory by its ID. " +
			"Returns confirmation of deletion or error if product not found.",
	}, h.deleteProduct)
}

type getAllProductsArgs struct{}

type searchByCategoryArgs struct {
	Category string `json:"category" jsonschema:"the category name to search for (case-sensitive)"`
}

type findProductsUnderPriceArgs struct {
	MaxPrice float64 `json:"maxPrice" jsonschema:"the maximum price threshold (exclusive)"`
}

type addProductArgs struct {
	Name     string  `json:"name" jsonschema:"the product name (required, non-empty)"`
	Category string  `json:"category" jsonschema:"the product category (required, non-empty)"`
	Price    float64 `json:"price" jsonschema:"the product price (must be non-negative)"`
	Stock    int32   `json:"stock" jsonschema:"the initial stock quantity (must be non-negative)"`
}

type updateProductArgs struct {
	ID       int64   `json:"id" jsonschema:"the ID of the product to update"`
	Name     string  `json:"name" jsonschema:"the new product name"`
	Category string  `json:"category" jsonschema:"the new category"`
	Price    float64 `json:"price" jsonschema:"the new price"`
	Stock    int32   `json:"stock" jsonschema:"the new stock quantity"`
}

type deleteProductArgs struct {
	ID int64 `json:"id" jsonschema:"the ID of the product to delete"`
}

func (h *handlers) getAllProducts(ctx context.Context, _ *mcp.CallToolRequest, _ getAllProductsArgs) (*mcp.CallToolResult, any, error) {
	text, err := h.service.GetAllProducts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "getAllProducts failed", "error", err)
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

func (h *handlers) searchByCategory(ctx context.Context, _ *mcp.CallToolRequest, args searchByCategoryArgs) (*mcp.CallToolResult, any, error) {
	text, err := h.service.SearchByCategory(ctx, args.Category)
	if err != nil {
		h.logger.ErrorContext(ctx, "searchByCategory failed", "category", args.Category, "error", err)
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

func (h *handlers) findProductsUnderPrice(ctx context.Context, _ *mcp.CallToolRequest, args findProductsUnderPriceArgs) (*mcp.CallToolResult, any, error) {
	text, err := h.service.FindProductsUnderPrice(ctx, args.MaxPrice)
	if err != nil {
		h.logger.ErrorContext(ctx, "findProductsUnderPrice failed", "maxPrice", args.MaxPrice, "error", err)
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

func (h *handlers) addProduct(ctx context.Context, _ *mcp.CallToolRequest, args addProductArgs) (*mcp.CallToolResult, any, error) {
	text, err := h.service.AddProduct(ctx, args.Name, args.Category, args.Price, args.Stock)
	if err != nil {
		h.logger.ErrorContext(ctx, "addProduct failed", "name", args.Name, "error", err)
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

func (h *handlers) updateProduct(ctx context.Context, _ *mcp.CallToolRequest, args updateProductArgs) (*mcp.CallToolResult, any, error) {
	text, err := h.service.UpdateProduct(ctx, args.ID, args.Name, args.Category, args.Price, args.Stock)
	if err != nil {
		h.logger.ErrorContext(ctx, "updateProduct failed", "ID", args.ID, "error", err)
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

func (h *handlers) deleteProduct(ctx context.Context, _ *mcp.CallToolRequest, args deleteProductArgs) (*mcp.CallToolResult, any, error) {
	text, err := h.service.DeleteProduct(ctx, args.ID)
	if err != nil {
		h.logger.ErrorContext(ctx, "deleteProduct failed", "ID", args.ID, "error", err)
		return nil, nil, err
	}
	return textResult(text), nil, nil
}

// textResult wraps a formatted response in a single text content block.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
