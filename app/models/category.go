package models

// Category is a merchandising group shown on the storefront home page. It is
// unrelated to ProductCategory, which classifies a garment.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required,notblank,max=100"`
	ImageURL string `json:"image_url" validate:"omitempty,url"`
	Tagline  string `json:"tagline" validate:"max=255"`
}
