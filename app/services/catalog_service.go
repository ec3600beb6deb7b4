package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/store"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

type ProductFilter struct {
	Search          string
	Collection      models.Collection
	BestSellingOnly bool
}

// FilterProducts keeps the products matching every criterion in f, in their
// original order. Zero values do not filter.
func FilterProducts(products []models.Product, f ProductFilter) []models.Product {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if f.Collection != models.CollectionNone && p.Collection != f.Collection {
			continue
		}
		if f.BestSellingOnly && !p.IsBestSelling {
			continue
		}
		out = append(out, p)
	}
	return out
}

type CatalogService struct {
	store  *store.Store
	logger *zap.Logger
}

func NewCatalogService(st *store.Store, logger *zap.Logger) *CatalogService {
	return &CatalogService{store: st, logger: logger}
}

func (s *CatalogService) Products(filter ProductFilter) []models.Product {
	return FilterProducts(s.store.Snapshot().Products, filter)
}

func (s *CatalogService) Product(id string) (models.Product, error) {
	p, ok := findProduct(s.store.Snapshot().Products, id)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *CatalogService) Categories() []models.Category {
	return s.store.Snapshot().Categories
}

func findProduct(products []models.Product, id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// newCatalogID derives an id from the clock, bumping it until it is unused.
func newCatalogID(prefix string, taken func(string) bool) string {
	ms := time.Now().UnixMilli()
	for {
		id := fmt.Sprintf("%s%d", prefix, ms)
		if !taken(id) {
			return id
		}
		ms++
	}
}

func (s *CatalogService) CreateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	if err := validate.Struct(p); err != nil {
		return models.Product{}, err
	}

	err := s.store.Update(ctx, func(st *store.State) error {
		p.ID = newCatalogID("p", func(id string) bool {
			_, ok := findProduct(st.Products, id)
			return ok
		})
		st.Products = append(st.Products, p)
		return nil
	}, store.KeyProducts)
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("product created", zap.String("product_id", p.ID), zap.String("name", p.Name))
	return p, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, p models.Product) (models.Product, error) {
	if err := validate.Struct(p); err != nil {
		return models.Product{}, err
	}
	p.ID = id

	err := s.store.Update(ctx, func(st *store.State) error {
		for i := range st.Products {
			if st.Products[i].ID == id {
				st.Products[i] = p
				return nil
			}
		}
		return ErrProductNotFound
	}, store.KeyProducts)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return models.Product{}, err
		}
		return models.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(st *store.State) error {
		kept := make([]models.Product, 0, len(st.Products))
		for _, p := range st.Products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		if len(kept) == len(st.Products) {
			return ErrProductNotFound
		}
		st.Products = kept
		return nil
	}, store.KeyProducts)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, c models.Category) (models.Category, error) {
	if err := validate.Struct(c); err != nil {
		return models.Category{}, err
	}

	err := s.store.Update(ctx, func(st *store.State) error {
		c.ID = newCatalogID("c", func(id string) bool {
			for _, existing := range st.Categories {
				if existing.ID == id {
					return true
				}
			}
			return false
		})
		st.Categories = append(st.Categories, c)
		return nil
	}, store.KeyCategories)
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to create category: %w", err)
	}
	return c, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, c models.Category) (models.Category, error) {
	if err := validate.Struct(c); err != nil {
		return models.Category{}, err
	}
	c.ID = id

	err := s.store.Update(ctx, func(st *store.State) error {
		for i := range st.Categories {
			if st.Categories[i].ID == id {
				st.Categories[i] = c
				return nil
			}
		}
		return ErrCategoryNotFound
	}, store.KeyCategories)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return models.Category{}, err
		}
		return models.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	err := s.store.Update(ctx, func(st *store.State) error {
		kept := make([]models.Category, 0, len(st.Categories))
		for _, c := range st.Categories {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(st.Categories) {
			return ErrCategoryNotFound
		}
		st.Categories = kept
		return nil
	}, store.KeyCategories)
	if err != nil {
		if errors.Is(err, ErrCategoryNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}
