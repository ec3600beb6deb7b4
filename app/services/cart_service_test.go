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

func TestCartService(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewCartService(f.store, zap.NewNop())
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, AddToCartRequest{ProductID: "p1", Size: "M"})
	require.NoError(t, err)
	cart, err = svc.AddItem(ctx, AddToCartRequest{ProductID: "p1", Size: "M"})
	require.NoError(t, err)
	cart, err = svc.AddItem(ctx, AddToCartRequest{ProductID: "p2"})
	require.NoError(t, err)

	require.Len(t, cart, 2)
	assert.Equal(t, "p1-M", cart[0].CartID)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, "p2-L", cart[1].CartID)

	persisted := stored[models.Cart](t, f, store.KeyCart)
	assert.Equal(t, cart, persisted)

	cart, err = svc.UpdateQuantity(ctx, "p1-M", -5)
	require.NoError(t, err)
	assert.Equal(t, 1, cart[0].Quantity)

	cart, err = svc.UpdateQuantity(ctx, "unknown-L", 3)
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Count())

	cart, err = svc.RemoveItem(ctx, "p1-M")
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, svc.Cart(), cart)
}

func TestCartService_UnknownProduct(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewCartService(f.store, zap.NewNop())

	_, err := svc.AddItem(context.Background(), AddToCartRequest{ProductID: "nope", Size: "L"})
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.Empty(t, svc.Cart())
}

func TestCartService_ReturnedCartIsDetached(t *testing.T) {
	f := newFixture(t, nil)
	svc := NewCartService(f.store, zap.NewNop())

	cart, err := svc.AddItem(context.Background(), AddToCartRequest{ProductID: "p1", Size: "L"})
	require.NoError(t, err)
	cart[0].Quantity = 99

	assert.Equal(t, 1, svc.Cart()[0].Quantity)
}

func TestCartService_AddItemGuards(t *testing.T) {
	f := newFixture(t, map[store.Key]any{store.KeyProducts: outOfStock("p2")})
	svc := NewCartService(f.store, zap.NewNop())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, AddToCartRequest{ProductID: "p2", Size: "M"})
	assert.ErrorIs(t, err, ErrOutOfStock)

	_, err = svc.AddItem(ctx, AddToCartRequest{ProductID: "p1", Size: "banana"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Size", verrs[0].Field())

	_, err = svc.AddItem(ctx, AddToCartRequest{Size: "S"})
	require.True(t, errors.As(err, &verrs))

	assert.Empty(t, svc.Cart())

	for _, size := range models.Sizes {
		_, err := svc.AddItem(ctx, AddToCartRequest{ProductID: "p1", Size: size})
		require.NoError(t, err, size)
	}
	assert.Len(t, svc.Cart(), len(models.Sizes))
}
