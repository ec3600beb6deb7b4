package models

type ProductCategory string

const (
	CategoryTShirts ProductCategory = "T-Shirts"
	CategoryHoodies ProductCategory = "Hoodies"
	CategoryJackets ProductCategory = "Jackets"
	CategoryHats    ProductCategory = "Hats"
)

type Collection string

const (
	CollectionNone   Collection = ""
	CollectionWinter Collection = "Winter"
	CollectionSummer Collection = "Summer"
)

type Product struct {
	ID            string          `json:"id"`
	Name          string          `json:"name" validate:"required,notblank,max=255"`
	Price         int64           `json:"price" validate:"gte=0"`
	ImageURL      string          `json:"image_url"`
	Category      ProductCategory `json:"category" validate:"required,oneof=T-Shirts Hoodies Jackets Hats"`
	Collection    Collection      `json:"collection,omitempty" validate:"omitempty,oneof=Winter Summer"`
	Stock         int             `json:"stock" validate:"gte=0"`
	RewardPoints  int64           `json:"reward_points" validate:"gte=0"`
	IsBestSelling bool            `json:"is_best_selling,omitempty"`
}

func (p Product) InStock() bool {
	return p.Stock > 0
}

// LowStock reports whether the admin inventory view should flag the product.
func (p Product) LowStock() bool {
	return p.Stock < 5
}
