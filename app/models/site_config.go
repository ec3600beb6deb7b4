package models

type SocialLinks struct {
	Instagram string `json:"instagram,omitempty" validate:"omitempty,url"`
	Facebook  string `json:"facebook,omitempty" validate:"omitempty,url"`
	Twitter   string `json:"twitter,omitempty" validate:"omitempty,url"`
	WhatsApp  string `json:"whatsapp,omitempty"`
}

type SiteConfig struct {
	HeroTitle        string      `json:"hero_title" validate:"required,notblank,max=255"`
	HeroTagline      string      `json:"hero_tagline"`
	HeroImageURL     string      `json:"hero_image_url" validate:"omitempty,url"`
	PromoBannerURL   string      `json:"promo_banner_url" validate:"omitempty,url"`
	PromoBannerTitle string      `json:"promo_banner_title"`
	LookbookImageURL string      `json:"lookbook_image_url" validate:"omitempty,url"`
	LookbookTitle    string      `json:"lookbook_title"`
	SocialLinks      SocialLinks `json:"social_links"`
}
