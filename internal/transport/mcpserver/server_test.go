package mcpserver

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockInventory is a mock implementation of the InventoryService interface.
type mockInventory struct {
	text string
	err  error

	lastOp       string
	lastCategory string
	lastMaxPrice float64
	lastID       int64
}

func (m *mockInventory) GetAllProducts(_ context.Context) (string, error) {
	m.lastOp = "getAllProducts"
	return m.text, m.err
}

func (m *mockInventory) SearchByCategory(_ context.Context, category string) (string, error) {
	m.lastOp = "searchByCategory"
	m.lastCategory = category
	return m.text, m.err
}

func (m *mockInventory) FindProductsUnderPrice(_ context.Context, maxPrice float64) (string, error) {
	m.lastOp = "findProductsUnderPrice"
	m.lastMaxPrice = maxPrice
	return m.text, m.err
}

func (m *mockInventory) AddProduct(_ context.Context, _, _ string, _ float64, _ int32) (string, error) {
	m.lastOp = "addProduct"
	return m.text, m.err
}

func (m *mockInventory) UpdateProduct(_ context.Context, id int64, _, _ string, _ float64, _ int32) (string, error) {
	m.lastOp = "updateProduct"
	m.lastID = id
	return m.text, m.err
}

func (m *mockInventory) DeleteProduct(_ context.Context, id int64) (string, error) {
	m.lastOp = "deleteProduct"
	m.lastID = id
	return m.text, m.err
}

func newTestHandlers(m *mockInventory) *handlers {
	return &handlers{service: m, logger: slog.New(slog.DiscardHandler)}
}

func textOf(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected a text content block")
	return tc.Text
}

func TestNewServer(t *testing.T) {
	srv := NewServer(&mockInventory{}, slog.New(slog.DiscardHandler), "0.1.0")
	require.NotNil(t, srv)
}

func Test_Handlers_ReturnFacadeTextVerbatim(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}

	t.Run("getAllProducts", func(t *testing.T) {
		// given
		m := &mockInventory{text: "Found 0 products:\n\n"}
		h := newTestHandlers(m)
		// when
		res, out, err := h.getAllProducts(ctx, req, getAllProductsArgs{})
		// then
		require.NoError(t, err)
		assert.Nil(t, out)
		assert.Equal(t, "Found 0 products:\n\n", textOf(t, res))
		assert.Equal(t, "getAllProducts", m.lastOp)
	})

	t.Run("searchByCategory passes the raw category", func(t *testing.T) {
		// given
		m := &mockInventory{text: "No products found in category ' Books'."}
		h := newTestHandlers(m)
		// when
		res, _, err := h.searchByCategory(ctx, req, searchByCategoryArgs{Category: " Books"})
		// then
		require.NoError(t, err)
		assert.Equal(t, "No products found in category ' Books'.", textOf(t, res))
		assert.Equal(t, " Books", m.lastCategory)
	})

	t.Run("findProductsUnderPrice passes the threshold", func(t *testing.T) {
		// given
		m := &mockInventory{text: "No products found under $5.00."}
		h := newTestHandlers(m)
		// when
		res, _, err := h.findProductsUnderPrice(ctx, req, findProductsUnderPriceArgs{MaxPrice: 5})
		// then
		require.NoError(t, err)
		assert.Equal(t, "No products found under $5.00.", textOf(t, res))
		assert.InDelta(t, 5.0, m.lastMaxPrice, 0)
	})

	t.Run("addProduct returns validation message as text, not error", func(t *testing.T) {
		// given
		m := &mockInventory{text: "Error: Product name cannot be empty."}
		h := newTestHandlers(m)
		// when
		res, _, err := h.addProduct(ctx, req, addProductArgs{})
		// then
		require.NoError(t, err)
		assert.Equal(t, "Error: Product name cannot be empty.", textOf(t, res))
	})

	t.Run("updateProduct passes the id", func(t *testing.T) {
		// given
		m := &mockInventory{text: "Error: Product with ID 42 not found."}
		h := newTestHandlers(m)
		// when
		res, _, err := h.updateProduct(ctx, req, updateProductArgs{ID: 42, Name: "X", Category: "Y", Price: 1, Stock: 1})
		// then
		require.NoError(t, err)
		assert.Equal(t, "Error: Product with ID 42 not found.", textOf(t, res))
		assert.Equal(t, int64(42), m.lastID)
	})

	t.Run("deleteProduct passes the id", func(t *testing.T) {
		// given
		m := &mockInventory{text: "Product 'Jeans' (ID: 7) deleted successfully."}
		h := newTestHandlers(m)
		// when
		res, _, err := h.deleteProduct(ctx, req, deleteProductArgs{ID: 7})
		// then
		require.NoError(t, err)
		assert.Equal(t, "Product 'Jeans' (ID: 7) deleted successfully.", textOf(t, res))
		assert.Equal(t, int64(7), m.lastID)
	})
}

func Test_Handlers_StoreFailureFailsTheCall(t *testing.T) {
	// given
	ErrStore := errors.New("store error")
	h := newTestHandlers(&mockInventory{err: ErrStore})
	// when
	res, out, err := h.getAllProducts(context.Background(), &mcp.CallToolRequest{}, getAllProductsArgs{})
	// then
	assert.ErrorIs(t, err, ErrStore)
	assert.Nil(t, res)
	assert.Nil(t, out)
}
