package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/store"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterProducts(t *testing.T) {
	products := testProducts()

	tests := []struct {
		name   string
		filter ProductFilter
		want   []string
	}{
		{"no filter keeps order", ProductFilter{}, []string{"p1", "p2", "p3", "p4"}},
		{"search ignores case", ProductFilter{Search: "hoodie"}, []string{"p3"}},
		{"search substring", ProductFilter{Search: "ss"}, []string{"p1", "p2"}},
		{"collection", ProductFilter{Collection: models.CollectionSummer}, []string{"p1", "p2"}},
		{"best selling", ProductFilter{BestSellingOnly: true}, []string{"p3", "p4"}},
		{"combined", ProductFilter{Collection: models.CollectionWinter, BestSellingOnly: true, Search: "ARCTIC"}, []string{"p3"}},
		{"no match", ProductFilter{Search: "jacket"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(FilterProducts(products, tt.filter)))
		})
	}

	assert.Empty(t, FilterProducts(nil, ProductFilter{Search: "x"}))
}

func TestCatalogService_ProductCRUD(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewCatalogService(f.store, zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateProduct(ctx, models.Product{Name: "MIDNIGHT PUFFER", Price: 2500, Category: models.CategoryJackets, Stock: 3})
	require.NoError(t, err)
	assert.Regexp(t, `^p\d+$`, created.ID)

	got, err := svc.Product(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "MIDNIGHT PUFFER", got.Name)
	assert.Len(t, stored[[]models.Product](t, f, store.KeyProducts), 5)

	created.Price = 2200
	updated, err := svc.UpdateProduct(ctx, created.ID, created)
	require.NoError(t, err)
	assert.EqualValues(t, 2200, updated.Price)

	_, err = svc.UpdateProduct(ctx, "missing", created)
	assert.ErrorIs(t, err, ErrProductNotFound)

	require.NoError(t, svc.DeleteProduct(ctx, created.ID))
	_, err = svc.Product(created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, svc.DeleteProduct(ctx, created.ID), ErrProductNotFound)
}

func TestCatalogService_ProductValidation(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewCatalogService(f.store, zap.NewNop())

	_, err := svc.CreateProduct(context.Background(), models.Product{Price: -1, Category: "Socks"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := map[string]bool{}
	for _, fe := range verrs {
		fields[fe.Field()] = true
	}
	assert.True(t, fields["Name"])
	assert.True(t, fields["Price"])
	assert.True(t, fields["Category"])
	assert.Len(t, svc.Products(ProductFilter{}), 4)
}

func TestCatalogService_CategoryCRUD(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewCatalogService(f.store, zap.NewNop())
	ctx := context.Background()

	c, err := svc.CreateCategory(ctx, models.Category{Name: "Graphic Drops", Tagline: "Loud prints"})
	require.NoError(t, err)
	assert.Len(t, svc.Categories(), 2)

	c.Tagline = "Louder prints"
	_, err = svc.UpdateCategory(ctx, c.ID, c)
	require.NoError(t, err)
	assert.Equal(t, "Louder prints", stored[[]models.Category](t, f, store.KeyCategories)[1].Tagline)

	require.NoError(t, svc.DeleteCategory(ctx, c.ID))
	assert.ErrorIs(t, svc.DeleteCategory(ctx, c.ID), ErrCategoryNotFound)
	_, err = svc.UpdateCategory(ctx, c.ID, c)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}
