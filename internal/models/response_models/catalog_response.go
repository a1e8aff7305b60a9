package response_models

type CatalogCountry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CatalogRegion struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CatalogCity struct {
	ID       string `json:"id"`
	RegionID string `json:"region_id,omitempty"`
	Name     string `json:"name"`
}

// Catalog item sources. Restaurants come from two tables.
const (
	SourceAttraction = "attraction"
	SourceHotel      = "hotel"
	SourceRestaurant = "restaurant"
	SourceMichelin   = "michelin"
	SourceManual     = "manual"
)

// CatalogItem is one selectable row of any catalog, carrying the full
// record the editor applies on confirm.
type CatalogItem struct {
	ID            string   `json:"id"`
	Source        string   `json:"source"`
	Name          string   `json:"name"`
	NameEn        string   `json:"name_en,omitempty"`
	Aliases       []string `json:"aliases,omitempty"`
	Category      string   `json:"category,omitempty"`
	Description   string   `json:"description,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	Images        []string `json:"images,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	StarRating    *int     `json:"star_rating,omitempty"`
	MichelinStars int      `json:"michelin_stars,omitempty"`
	CuisineType   []string `json:"cuisine_type,omitempty"`
	PriceRange    string   `json:"price_range,omitempty"`
	IsFeatured    bool     `json:"is_featured,omitempty"`
	CountryID     string   `json:"country_id"`
	RegionID      string   `json:"region_id,omitempty"`
	CityID        string   `json:"city_id,omitempty"`
	RegionName    string   `json:"region_name,omitempty"`
	CityName      string   `json:"city_name,omitempty"`
	Suggested     bool     `json:"suggested,omitempty"`
}
