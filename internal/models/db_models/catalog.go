package db_models

import "github.com/lib/pq"

// CatalogPlace holds the columns every catalog table shares.
type CatalogPlace struct {
	Name         string
	NameEn       string
	Category     string
	Description  string
	Thumbnail    string
	Images       pq.StringArray `gorm:"type:text[]"`
	CountryID    string         `gorm:"index"`
	RegionID     string
	CityID       string
	IsActive     bool
	DisplayOrder int
}

type Attraction struct {
	BaseModel
	CatalogPlace `gorm:"embedded"`
	Aliases      pq.StringArray `gorm:"type:text[]"`
	// WorkspaceID is set on rows promoted from a tour activity.
	WorkspaceID string
}

type Hotel struct {
	BaseModel
	CatalogPlace `gorm:"embedded"`
	Brand        string
	StarRating   *int
	HotelClass   string
	PriceRange   string
	IsFeatured   bool
}

type Restaurant struct {
	BaseModel
	CatalogPlace `gorm:"embedded"`
	CuisineType  pq.StringArray `gorm:"type:text[]"`
	PriceRange   string
	IsFeatured   bool
}

type MichelinRestaurant struct {
	BaseModel
	CatalogPlace  `gorm:"embedded"`
	CuisineType   pq.StringArray `gorm:"type:text[]"`
	PriceRange    string
	MichelinStars int
}
