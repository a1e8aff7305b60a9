package response_models

type SelectorFilters struct {
	CountryID string `json:"country_id"`
	RegionID  string `json:"region_id"`
	CityID    string `json:"city_id"`
	Brand     string `json:"brand"`
}

type SelectorResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	State       string          `json:"state"`
	TourID      string          `json:"tour_id"`
	DayIndex    int             `json:"day_index"`
	Meal        string          `json:"meal,omitempty"`
	Filters     SelectorFilters `json:"filters"`
	Search      string          `json:"search"`
	Rows        []CatalogItem   `json:"rows"`
	SelectedIDs []string        `json:"selected_ids"`
}

type SelectorResult struct {
	Applied int           `json:"applied"`
	Tour    *TourResponse `json:"tour"`
}
