package memory_test

import (
	"context"
	"testing"

	"github.com/goto/screener/core/product"
	"github.com/goto/screener/internal/data"
	"github.com/goto/screener/internal/store/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepositoryEmbedded(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewProductRepository(memory.File{Embedded: data.Products})
	require.NoError(t, repo.Reload(ctx))

	assert.Equal(t, 12, repo.Len())

	byID, err := repo.GetByID(ctx, "4FC2907E-A052-4D92-9B4E-6B80BF5E3C45")
	require.NoError(t, err)
	assert.Equal(t, "EB-GO", byID.SKU)

	bySKU, err := repo.GetBySKU(ctx, "eb-go")
	require.NoError(t, err)
	assert.Equal(t, byID, bySKU)

	dock, err := repo.GetBySKU(ctx, "DK-USB4")
	require.NoError(t, err)
	assert.Nil(t, dock.Rating)

	_, err = repo.GetBySKU(ctx, "NOPE")
	assert.ErrorAs(t, err, new(product.NotFoundError))
	_, err = repo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorAs(t, err, new(product.NotFoundError))
}

func TestProductRepositoryDocuments(t *testing.T) {
	type testCase struct {
		Description string
		Content     string
		Expected    []string
		LoadErr     bool
	}

	testCases := []testCase{
		{
			Description: "bare list without version",
			Content:     `[{"sku": "A-1", "name": "A", "type": "digital", "price": 1}]`,
			Expected:    []string{"A-1"},
		},
		{
			Description: "compatible minor version",
			Content:     `{"version": "1.9.3", "products": [{"sku": "A-1"}, {"sku": ""}, {"sku": "B-2"}]}`,
			Expected:    []string{"A-1", "B-2"},
		},
		{
			Description: "incompatible major version",
			Content:     `{"version": "2.0.0", "products": []}`,
			LoadErr:     true,
		},
		{
			Description: "missing version",
			Content:     `{"products": []}`,
			LoadErr:     true,
		},
		{
			Description: "invalid id skips the record",
			Content:     `{"version": "1.0.0", "products": [{"id": "not-a-uuid", "sku": "A-1"}, {"sku": "B-2"}]}`,
			Expected:    []string{"B-2"},
		},
		{
			Description: "placeholder numbers keep the record",
			Content:     `[{"sku": "A-1", "price": "N/A", "rating": ""}, {"sku": "B-2", "price": "12.5", "in_stock": "yes"}]`,
			Expected:    []string{"A-1", "B-2"},
		},
		{
			Description: "record of the wrong shape is skipped",
			Content:     `[{"sku": ["A-1"]}, "B-2", {"sku": "C-3"}]`,
			Expected:    []string{"C-3"},
		},
		{
			Description: "malformed json",
			Content:     `{"version": "1.0.0", "products": [`,
			LoadErr:     true,
		},
		{
			Description: "duplicate sku derived ids",
			Content:     `[{"sku": "A-1"}, {"sku": "a-1"}]`,
			LoadErr:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			ctx := context.Background()
			repo := memory.NewProductRepository(memory.File{Path: writeFile(t, "products.json", tc.Content)})

			err := repo.Reload(ctx)
			if tc.LoadErr {
				assert.ErrorAs(t, err, new(memory.LoadError))
				return
			}
			require.NoError(t, err)

			all, err := repo.GetAll(ctx)
			require.NoError(t, err)
			var skus []string
			for _, p := range all {
				skus = append(skus, p.SKU)
				assert.NotEmpty(t, p.ID)
			}
			assert.Equal(t, tc.Expected, skus)
		})
	}
}

func TestProductRepositoryDerivedIDIsStable(t *testing.T) {
	ctx := context.Background()
	path := writeFile(t, "products.json", `[{"sku": "A-1"}]`)

	first := memory.NewProductRepository(memory.File{Path: path})
	require.NoError(t, first.Reload(ctx))
	second := memory.NewProductRepository(memory.File{Path: path})
	require.NoError(t, second.Reload(ctx))

	a, err := first.GetBySKU(ctx, "A-1")
	require.NoError(t, err)
	b, err := second.GetBySKU(ctx, "A-1")
	require.NoError(t, err)
	assert.Equal(t, a.ID, b.ID)
}

func TestProductRepositoryLenientFields(t *testing.T) {
	ctx := context.Background()
	path := writeFile(t, "products.json", `{"version": "1.0.0", "products": [
		{"sku": "A-1", "price": "N/A", "rating": "", "in_stock": "nope"},
		{"sku": "B-2", "price": "1,250.50", "rating": "4.5", "in_stock": "YES"},
		{"sku": "C-3", "price": -3, "rating": 7, "in_stock": true},
		{"sku": "D-4", "price": null, "rating": {"stars": 4}, "in_stock": 1}
	]}`)
	repo := memory.NewProductRepository(memory.File{Path: path})
	require.NoError(t, repo.Reload(ctx))
	require.Equal(t, 4, repo.Len())

	type testCase struct {
		SKU     string
		Price   *float64
		Rating  *float64
		InStock bool
	}

	testCases := []testCase{
		{SKU: "A-1"},
		{SKU: "B-2", Price: ptr(1250.5), Rating: ptr(4.5), InStock: true},
		{SKU: "C-3", InStock: true},
		{SKU: "D-4", InStock: true},
	}

	for _, tc := range testCases {
		t.Run(tc.SKU, func(t *testing.T) {
			got, err := repo.GetBySKU(ctx, tc.SKU)
			require.NoError(t, err)
			assert.Equal(t, tc.Price, got.Price)
			assert.Equal(t, tc.Rating, got.Rating)
			assert.Equal(t, tc.InStock, got.InStock)
		})
	}
}

func ptr[T any](v T) *T { return &v }
