package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/store"
	"go.uber.org/zap"
)

var ErrOutOfStock = errors.New("product is out of stock")

type AddToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"omitempty,garment_size"`
}

type CartService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewCartService(st *store.Store, logger *zap.Logger) *CartService {
	return &CartService{store: st, logger: logger}
}

func (s *CartService) Cart() models.Cart {
	return s.store.Snapshot().Cart
}

// AddItem puts one unit of the product in the given size into the cart. An
// empty size means the default size.
func (s *CartService) AddItem(ctx context.Context, req AddToCartRequest) (models.Cart, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	var cart models.Cart
	err := s.store.Update(ctx, func(st *store.State) error {
		product, ok := findProduct(st.Products, req.ProductID)
		if !ok {
			return ErrProductNotFound
		}
		if !product.InStock() {
			return ErrOutOfStock
		}
		st.Cart = st.Cart.Add(product, req.Size)
		cart = append(models.Cart{}, st.Cart...)
		return nil
	}, store.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("failed to add item to cart: %w", err)
	}
	return cart, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, key string, delta int) (models.Cart, error) {
	return s.mutate(ctx, func(c models.Cart) models.Cart { return c.UpdateQuantity(key, delta) })
}

func (s *CartService) RemoveItem(ctx context.Context, key string) (models.Cart, error) {
	return s.mutate(ctx, func(c models.Cart) models.Cart { return c.Remove(key) })
}

func (s *CartService) mutate(ctx context.Context, op func(models.Cart) models.Cart) (models.Cart, error) {
	var cart models.Cart
	err := s.store.Update(ctx, func(st *store.State) error {
		st.Cart = op(st.Cart)
		cart = append(models.Cart{}, st.Cart...)
		return nil
	}, store.KeyCart)
	if err != nil {
		return nil, fmt.Errorf("failed to update cart: %w", err)
	}
	return cart, nil
}
