package request_models

import "github.com/Corner-venturo/Corner-sub004/internal/itinerary"

type CreateTourRequest struct {
	Title          string                `json:"title" binding:"required"`
	Country        string                `json:"country"`
	CountryID      string                `json:"country_id"`
	ItineraryStyle string                `json:"itinerary_style"`
	Days           []itinerary.DayRecord `json:"days"`
}

type AddDayRequest struct {
	IsAlternative bool `json:"isAlternative"`
}

type UpdateDayRequest struct {
	Title               *string          `json:"title"`
	Highlight           *string          `json:"highlight"`
	Description         *string          `json:"description"`
	Date                *string          `json:"date"`
	IsAlternative       *bool            `json:"isAlternative"`
	Meals               *itinerary.Meals `json:"meals"`
	Accommodation       *string          `json:"accommodation"`
	AccommodationRating *int             `json:"accommodationRating"`
	AccommodationURL    *string          `json:"accommodationUrl"`
	IsSameAccommodation *bool            `json:"isSameAccommodation"`
	LocationLabel       *string          `json:"locationLabel"`
	DisplayStyle        *string          `json:"displayStyle"`
}

func (r UpdateDayRequest) Patch() itinerary.DayPatch {
	return itinerary.DayPatch{
		Title:               r.Title,
		Highlight:           r.Highlight,
		Description:         r.Description,
		Date:                r.Date,
		IsAlternative:       r.IsAlternative,
		Meals:               r.Meals,
		Accommodation:       r.Accommodation,
		AccommodationRating: r.AccommodationRating,
		AccommodationURL:    r.AccommodationURL,
		IsSameAccommodation: r.IsSameAccommodation,
		LocationLabel:       r.LocationLabel,
		DisplayStyle:        r.DisplayStyle,
	}
}

type SwapDaysRequest struct {
	A int `json:"a"`
	B int `json:"b"`
}

// MoveRequest is a finished drag: the dragged item's id and the id of the
// item it was dropped on.
type MoveRequest struct {
	FromID string `json:"from_id" binding:"required"`
	ToID   string `json:"to_id" binding:"required"`
}

type UpdateActivityRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// ReorderActivitiesRequest carries either a permutation of current indices
// or the full reordered list.
type ReorderActivitiesRequest struct {
	Order      []int                      `json:"order"`
	Activities []itinerary.ActivityRecord `json:"activities"`
}

// ImagePositionRequest sets a focal point from an explicit value, or from
// where a pointer drag ended inside the preview box.
type ImagePositionRequest struct {
	Value    *string         `json:"value"`
	PointerX *float64        `json:"pointer_x"`
	PointerY *float64        `json:"pointer_y"`
	Rect     *itinerary.Rect `json:"rect"`
	Snap     float64         `json:"snap"`
}

type DayImageRequest struct {
	URL string `json:"url" binding:"required"`
}

type RecommendationRequest struct {
	Value string `json:"value"`
}
