package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/fortes-labs/storefront/internal/models"
	"github.com/fortes-labs/storefront/internal/repo"
	"github.com/fortes-labs/storefront/internal/transport"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }

func TestProductService_CreateThenGet(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Repo: newTestRepo(t)}
	ctx := context.Background()

	created, err := svc.Create(ctx, transport.CreateProductRequest{
		Name:        "Coffee Mug",
		Description: "ceramic mug",
		Category:    "Home & Kitchen",
		Price:       9.99,
		Stock:       5,
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Coffee Mug", got.Name)
	assert.Equal(t, "Home & Kitchen", got.Category)
	assert.Equal(t, 9.99, got.Price)
	assert.Equal(t, 5, got.Stock)
}

func TestProductService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := &ProductService{Repo: newTestRepo(t)}
	ctx := context.Background()

	tests := []struct {
		name string
		req  transport.CreateProductRequest
	}{
		{name: "empty name", req: transport.CreateProductRequest{Name: "  ", Category: "Toys", Price: 1}},
		{name: "empty category", req: transport.CreateProductRequest{Name: "Plushie", Category: "", Price: 1}},
		{name: "zero price", req: transport.CreateProductRequest{Name: "Plushie", Category: "Toys", Price: 0}},
		{name: "negative price", req: transport.CreateProductRequest{Name: "Plushie", Category: "Toys", Price: -5}},
		{name: "negative stock", req: transport.CreateProductRequest{Name: "Plushie", Category: "Toys", Price: 1, Stock: -1}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := svc.Create(ctx, tt.req)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestProductService_Update_FullReplace(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	svc := &ProductService{Repo: rp}
	ctx := context.Background()

	prod := createTestProduct(t, rp, "Old Name", 10, 3)

	updated, err := svc.Update(ctx, prod.ID, transport.UpdateProductRequest{
		Name:     strPtr("New Name"),
		Category: strPtr("Gaming"),
		Price:    floatPtr(25.5),
		Stock:    intPtr(7),
	})
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	assert.Equal(t, "Gaming", updated.Category)
	assert.Equal(t, 25.5, updated.Price)
	assert.Equal(t, 7, updated.Stock)
	// optional fields not sent are replaced with zero values
	assert.Empty(t, updated.Description)
}

func TestProductService_Update_MissingFieldRejected(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	svc := &ProductService{Repo: rp}
	ctx := context.Background()

	prod := createTestProduct(t, rp, "Mug", 10, 3)

	_, err := svc.Update(ctx, prod.ID, transport.UpdateProductRequest{
		Name:     strPtr("Mug"),
		Category: strPtr("Home"),
		Price:    floatPtr(10),
		// Stock missing
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProductService_Patch_PartialFields(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	svc := &ProductService{Repo: rp}
	ctx := context.Background()

	prod := createTestProduct(t, rp, "Headset", 149.99, 18)

	patched, err := svc.Patch(ctx, prod.ID, transport.PatchProductRequest{
		Price: floatPtr(129.99),
	})
	require.NoError(t, err)
	assert.Equal(t, 129.99, patched.Price)
	assert.Equal(t, "Headset", patched.Name)
	assert.Equal(t, 18, patched.Stock)
}

func TestProductService_Patch_InvalidField(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	svc := &ProductService{Repo: rp}
	ctx := context.Background()

	prod := createTestProduct(t, rp, "Headset", 149.99, 18)

	_, err := svc.Patch(ctx, prod.ID, transport.PatchProductRequest{Price: floatPtr(0)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Patch(ctx, prod.ID, transport.PatchProductRequest{Name: strPtr("   ")})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)

	got, err := svc.Get(ctx, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, 149.99, got.Price)
	assert.Equal(t, "Headset", got.Name)
}

func TestProductService_DeleteThenGet(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	svc := &ProductService{Repo: rp}
	ctx := context.Background()

	prod := createTestProduct(t, rp, "Smart Watch", 299.99, 22)

	removed, err := svc.Delete(ctx, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, prod.ID, removed.ID)
	assert.Equal(t, "Smart Watch", removed.Name)

	_, err = svc.Get(ctx, prod.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	_, err = svc.Delete(ctx, prod.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProductService_List_Filters(t *testing.T) {
	t.Parallel()

	rp := newTestRepo(t)
	svc := &ProductService{Repo: rp}
	ctx := context.Background()

	seedCatalog := []models.Product{
		{Name: "Laptop", Category: "Electronics", Price: 1299.99, Stock: 15},
		{Name: "Mouse", Category: "Electronics", Price: 59.99, Stock: 35},
		{Name: "Mug", Category: "Home & Kitchen", Price: 19.99, Stock: 30},
		{Name: "Plushie", Category: "Toys & Games", Price: 24.99, Stock: 20},
	}
	for i := range seedCatalog {
		_, err := rp.CreateProduct(ctx, &seedCatalog[i])
		require.NoError(t, err)
	}

	t.Run("no filter returns everything", func(t *testing.T) {
		total, items, err := svc.List(ctx, repo.ProductFilter{})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		assert.Len(t, items, 4)
	})

	t.Run("category match is case-insensitive substring", func(t *testing.T) {
		total, items, err := svc.List(ctx, repo.ProductFilter{Category: "electron"})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, items, 2)
		assert.Equal(t, "Laptop", items[0].Name)
		assert.Equal(t, "Mouse", items[1].Name)
	})

	t.Run("price bounds are inclusive", func(t *testing.T) {
		total, items, err := svc.List(ctx, repo.ProductFilter{
			MinPrice: floatPtr(19.99),
			MaxPrice: floatPtr(59.99),
		})
		require.NoError(t, err)
		assert.EqualValues(t, 3, total)
		assert.Len(t, items, 3)
	})

	t.Run("paging keeps full total", func(t *testing.T) {
		total, items, err := svc.List(ctx, repo.ProductFilter{Limit: 2, Offset: 2})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		require.Len(t, items, 2)
		assert.Equal(t, "Mug", items[0].Name)
		assert.Equal(t, "Plushie", items[1].Name)
	})
}
