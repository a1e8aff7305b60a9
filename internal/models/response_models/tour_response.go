package response_models

import "github.com/Corner-venturo/Corner-sub004/internal/itinerary"

type TourResponse struct {
	ID             string                `json:"id"`
	WorkspaceID    string                `json:"workspace_id"`
	Title          string                `json:"title"`
	Country        string                `json:"country"`
	CountryID      string                `json:"country_id,omitempty"`
	ItineraryStyle string                `json:"itinerary_style,omitempty"`
	Days           []itinerary.DayRecord `json:"days"`
	Labels         []string              `json:"labels"`
	Stats          itinerary.DayStats    `json:"stats"`
	UpdatedAt      string                `json:"updated_at,omitempty"`
}

type PromoteActivityResponse struct {
	AttractionID string        `json:"attraction_id"`
	Tour         *TourResponse `json:"tour"`
}
