package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	perrors "inventory-mcp/internal/errors"
)

// newTestGormStore opens a per-test database file: a plain ":memory:" DSN
// would give every pooled connection its own empty database.
func newTestGormStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "inventory_test.db")), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	s, err := NewGormStore(db)
	require.NoError(t, err)
	return s
}

func TestGormStore_CRUD(t *testing.T) {
	// given
	s := newTestGormStore(t)
	ctx := context.Background()

	// when: create
	created, err := s.Create(ctx, "Widget", "Tools", 9.99, 5)
	// then: sqlite assigned an ID
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	// when: read back
	found, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	// when: update all fields
	created.Name = "NewName"
	created.Category = "NewCat"
	created.Price = 0
	created.Stock = 0
	updated, err := s.Update(ctx, *created)
	require.NoError(t, err)
	assert.Equal(t, created, updated)

	// then: zero values were written too
	stored, err := s.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "NewName", stored.Name)
	assert.InDelta(t, 0, stored.Price, 0)
	assert.Equal(t, int32(0), stored.Stock)

	// when: delete
	require.NoError(t, s.Delete(ctx, *created))
	_, err = s.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func TestGormStore_NotFound(t *testing.T) {
	// given
	s := newTestGormStore(t)
	ctx := context.Background()

	// then
	_, err := s.FindByID(ctx, 42)
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)

	_, err = s.Update(ctx, Product{ID: 42, Name: "X", Category: "Y"})
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)

	err = s.Delete(ctx, Product{ID: 42})
	assert.ErrorIs(t, err, perrors.ErrProductNotFound)
}

func TestGormStore_Filters(t *testing.T) {
	// given
	s := newTestGormStore(t)
	ctx := context.Background()
	_, err := s.Create(ctx, "Clean Code", "Books", 39.99, 20)
	require.NoError(t, err)
	_, err = s.Create(ctx, "T-Shirt", "Clothing", 19.99, 100)
	require.NoError(t, err)

	// when / then: category match is exact and case-sensitive
	books, err := s.FindByCategory(ctx, "Books")
	require.NoError(t, err)
	assert.Len(t, books, 1)
	lower, err := s.FindByCategory(ctx, "books")
	require.NoError(t, err)
	assert.Empty(t, lower)

	// when / then: the price threshold is exclusive
	under, err := s.FindByPriceLessThan(ctx, 39.99)
	require.NoError(t, err)
	require.Len(t, under, 1)
	assert.Equal(t, "T-Shirt", under[0].Name)
}
