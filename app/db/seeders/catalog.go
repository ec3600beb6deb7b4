package seeders

import (
	"github.com/Rakhulsr/cloth-cafe/app/models"
	"github.com/Rakhulsr/cloth-cafe/app/store"
)

func Defaults() store.Defaults {
	return store.Defaults{
		Products:   DefaultProducts(),
		Categories: DefaultCategories(),
		Config:     DefaultSiteConfig(),
	}
}

func DefaultProducts() []models.Product {
	return []models.Product{
		{
			ID:           "p1",
			Name:         "ESPRESSO BLACK OVERSIZED",
			Price:        450,
			Category:     models.CategoryTShirts,
			Collection:   models.CollectionSummer,
			ImageURL:     "https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?q=80&w=1287&auto=format&fit=crop",
			Stock:        12,
			RewardPoints: 450,
		},
		{
			ID:           "p2",
			Name:         "LATTE CREAM ESSENTIAL",
			Price:        350,
			Category:     models.CategoryTShirts,
			Collection:   models.CollectionSummer,
			ImageURL:     "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?q=80&w=1480&auto=format&fit=crop",
			Stock:        8,
			RewardPoints: 350,
		},
		{
			ID:           "p3",
			Name:         "MOCHA GRAPHIC TEE",
			Price:        550,
			Category:     models.CategoryTShirts,
			Collection:   models.CollectionSummer,
			ImageURL:     "https://images.unsplash.com/photo-1503342217505-b0a15ec3261c?q=80&w=1470&auto=format&fit=crop",
			Stock:        5,
			RewardPoints: 550,
		},
		{
			ID:            "p4",
			Name:          "ARCTIC HEAVY HOODIE",
			Price:         1200,
			Category:      models.CategoryHoodies,
			Collection:    models.CollectionWinter,
			ImageURL:      "https://images.unsplash.com/photo-1556821840-3a63f95609a7?q=80&w=1287&auto=format&fit=crop",
			Stock:         15,
			RewardPoints:  1200,
			IsBestSelling: true,
		},
		{
			ID:           "p5",
			Name:         "MIDNIGHT PUFFER JACKET",
			Price:        2500,
			Category:     models.CategoryJackets,
			Collection:   models.CollectionWinter,
			ImageURL:     "https://images.unsplash.com/photo-1551028719-00167b16eac5?q=80&w=1287&auto=format&fit=crop",
			Stock:        7,
			RewardPoints: 2500,
		},
		{
			ID:           "p6",
			Name:         "SANDSTORM OVERSIZED",
			Price:        450,
			Category:     models.CategoryTShirts,
			Collection:   models.CollectionSummer,
			ImageURL:     "https://images.unsplash.com/photo-1576566588028-4147f3842f27?q=80&w=1364&auto=format&fit=crop",
			Stock:        20,
			RewardPoints: 450,
		},
	}
}

func DefaultCategories() []models.Category {
	return []models.Category{
		{
			ID:       "winter",
			Name:     "Winter Collection",
			Tagline:  "Stay Warm, Stay Street",
			ImageURL: "https://images.unsplash.com/photo-1551028719-00167b16eac5?q=80&w=1470&auto=format&fit=crop",
		},
		{
			ID:       "graphic",
			Name:     "Graphic Drops",
			Tagline:  "Wearable Art",
			ImageURL: "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?q=80&w=1480&auto=format&fit=crop",
		},
		{
			ID:       "essentials",
			Name:     "The Essentials",
			Tagline:  "Daily Fresh Brew",
			ImageURL: "https://images.unsplash.com/photo-1583743814966-8936f5b7be1a?q=80&w=1287&auto=format&fit=crop",
		},
	}
}

func DefaultSiteConfig() models.SiteConfig {
	return models.SiteConfig{
		HeroTitle:        "Brewing Style Daily",
		HeroTagline:      "From the softest cotton to the boldest graphics. Every piece is hand-selected and freshly pressed for the culture.",
		HeroImageURL:     "https://images.unsplash.com/photo-1550991152-12a20139121b?q=80&w=2070&auto=format&fit=crop",
		PromoBannerURL:   "https://images.unsplash.com/photo-1552346154-21d32810aba3?q=80&w=2070&auto=format&fit=crop",
		PromoBannerTitle: "Limited Drop // 001",
		LookbookImageURL: "https://images.unsplash.com/photo-1539109136881-3be0616acf4b?q=80&w=1887&auto=format&fit=crop",
		LookbookTitle:    "Winter Collective 25",
		SocialLinks: models.SocialLinks{
			Instagram: "https://instagram.com",
			Facebook:  "https://facebook.com",
			Twitter:   "https://twitter.com",
		},
	}
}
