package request_models

type OpenSelectorRequest struct {
	Kind     string `json:"kind" binding:"required,oneof=attraction hotel restaurant"`
	TourID   string `json:"tour_id" binding:"required"`
	DayIndex int    `json:"day_index"`
	Meal     string `json:"meal"`
}

// SelectorFiltersRequest changes only the fields that are present.
type SelectorFiltersRequest struct {
	CountryID *string `json:"country_id"`
	RegionID  *string `json:"region_id"`
	CityID    *string `json:"city_id"`
	Brand     *string `json:"brand"`
	Search    *string `json:"search"`
}

type ToggleSelectionRequest struct {
	ID string `json:"id" binding:"required"`
}

type ManualEntryRequest struct {
	Name string `json:"name"`
}
