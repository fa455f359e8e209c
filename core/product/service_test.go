package product_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/goto/screener/core/product"
	"github.com/goto/screener/core/product/mocks"
	"github.com/goto/screener/core/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func fixture() []product.Product {
	return []product.Product{
		{ID: "0b8e5c3a-6c1e-4f5e-9f0a-2d4c7b1a9e01", SKU: "KB-100", Name: "Mechanical Keyboard", Type: product.TypePhysical, Category: "peripherals", Price: ptr(129.99), Rating: ptr(4.6), InStock: true, Tags: []string{"usb-c"}},
		{ID: "4fc2907e-a052-4d92-9b4e-6b80bf5e3c45", SKU: "EB-GO", Name: "Go in Practice eBook", Type: product.TypeDigital, Category: "books", Price: ptr(24.99), Rating: ptr(4.8), InStock: true},
		{ID: "72f5c3a1-d385-40c5-8e71-9eb3e2816f78", SKU: "SB-CLOUD", Name: "Cloud Sandbox", Type: product.TypeSubscription, Category: "services", Price: ptr(15), Rating: nil, InStock: true},
		{ID: "2da07e5c-8e30-4b70-9d2c-4f6e9d3c1a23", SKU: "MN-27Q", Name: "27in QHD Monitor", Type: product.TypePhysical, Category: "displays", Price: ptr(329), Rating: ptr(4.4), InStock: false},
	}
}

func skus(ps []product.Product) []string {
	out := []string{}
	for _, p := range ps {
		out = append(out, p.SKU)
	}
	return out
}

func TestService_List(t *testing.T) {
	type testCase struct {
		Description string
		Params      url.Values
		Expected    []string
		ErrField    string
	}

	testCases := []testCase{
		{Description: "should return all products", Params: url.Values{}, Expected: []string{"KB-100", "EB-GO", "SB-CLOUD", "MN-27Q"}},
		{Description: "should filter by type", Params: url.Values{"types": {"physical"}}, Expected: []string{"KB-100", "MN-27Q"}},
		{Description: "should apply in_stock only when truthy", Params: url.Values{"in_stock": {"yes"}}, Expected: []string{"KB-100", "EB-GO", "SB-CLOUD"}},
		{Description: "should ignore a falsy in_stock", Params: url.Values{"in_stock": {"false"}}, Expected: []string{"KB-100", "EB-GO", "SB-CLOUD", "MN-27Q"}},
		{Description: "should drop unrated products from a rating range", Params: url.Values{"min_rating": {"0"}}, Expected: []string{"KB-100", "EB-GO", "MN-27Q"}},
		{Description: "should filter by price range", Params: url.Values{"min_price": {"20"}, "max_price": {"200"}}, Expected: []string{"KB-100", "EB-GO"}},
		{Description: "should search tags", Params: url.Values{"q": {"USB"}}, Expected: []string{"KB-100"}},
		{Description: "should sort by price descending", Params: url.Values{"sort": {"price"}, "direction": {"desc"}}, Expected: []string{"MN-27Q", "KB-100", "EB-GO", "SB-CLOUD"}},
		{Description: "should reject an unknown type", Params: url.Values{"types": {"service"}}, ErrField: "types"},
		{Description: "should reject a rating above five", Params: url.Values{"min_rating": {"6"}}, ErrField: "min_rating"},
		{Description: "should reject a negative price", Params: url.Values{"max_price": {"-1"}}, ErrField: "max_price"},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			ctx := context.Background()
			repo := mocks.NewProductRepository(t)
			if tc.ErrField == "" {
				repo.EXPECT().GetAll(ctx).Return(fixture(), nil)
			}
			svc := product.NewService(product.ServiceDeps{Repository: repo})

			flt, err := product.FilterFromParams(tc.Params)
			require.NoError(t, err)

			got, err := svc.List(ctx, flt)
			if tc.ErrField != "" {
				var ipe query.InvalidParameterError
				require.ErrorAs(t, err, &ipe)
				assert.Equal(t, tc.ErrField, ipe.Field)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, skus(got.Items))
		})
	}
}

func TestService_Get(t *testing.T) {
	id := "4fc2907e-a052-4d92-9b4e-6b80bf5e3c45"

	t.Run("should look up by id when given a uuid", func(t *testing.T) {
		ctx := context.Background()
		repo := mocks.NewProductRepository(t)
		repo.EXPECT().GetByID(ctx, id).Return(fixture()[1], nil)
		svc := product.NewService(product.ServiceDeps{Repository: repo})

		got, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "EB-GO", got.SKU)
	})

	t.Run("should look up by sku otherwise", func(t *testing.T) {
		ctx := context.Background()
		repo := mocks.NewProductRepository(t)
		repo.EXPECT().GetBySKU(ctx, "eb-go").Return(fixture()[1], nil)
		svc := product.NewService(product.ServiceDeps{Repository: repo})

		got, err := svc.Get(ctx, "eb-go")
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
	})

	t.Run("should wrap not found errors", func(t *testing.T) {
		ctx := context.Background()
		repo := mocks.NewProductRepository(t)
		repo.EXPECT().GetBySKU(ctx, mock.Anything).Return(product.Product{}, product.NotFoundError{SKU: "NOPE"})
		svc := product.NewService(product.ServiceDeps{Repository: repo})

		_, err := svc.Get(ctx, "NOPE")
		assert.ErrorAs(t, err, new(product.NotFoundError))
		assert.EqualError(t, err, `get product by sku: could not find product with sku "NOPE"`)
	})
}
