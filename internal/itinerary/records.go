package itinerary

import "strings"

// ManualIDPrefix marks catalog-like records created locally and not yet
// saved to the catalog.
const ManualIDPrefix = "manual_"

const (
	DefaultActivityIcon = "🌋"
	CatalogActivityIcon = "📍"
)

type Meals struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
}

// DayRecord is one day, or an alternative variant of the preceding day.
type DayRecord struct {
	Title               string           `json:"title"`
	Highlight           string           `json:"highlight,omitempty"`
	Description         string           `json:"description,omitempty"`
	Date                string           `json:"date,omitempty"`
	IsAlternative       bool             `json:"isAlternative"`
	Activities          []ActivityRecord `json:"activities"`
	Images              []DayImage       `json:"images"`
	Meals               Meals            `json:"meals"`
	Accommodation       string           `json:"accommodation"`
	AccommodationRating int              `json:"accommodationRating,omitempty"`
	AccommodationURL    string           `json:"accommodationUrl,omitempty"`
	IsSameAccommodation bool             `json:"isSameAccommodation,omitempty"`
	Recommendations     []string         `json:"recommendations"`
	LocationLabel       string           `json:"locationLabel,omitempty"`
	DisplayStyle        string           `json:"displayStyle,omitempty"`
}

// ActivityRecord is one stop within a day.
type ActivityRecord struct {
	Icon          string `json:"icon,omitempty"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	Image         string `json:"image,omitempty"`
	ImagePosition string `json:"imagePosition,omitempty"`
	AttractionID  string `json:"attraction_id,omitempty"`
	StartTime     string `json:"startTime,omitempty"`
	EndTime       string `json:"endTime,omitempty"`
}

// Activity field names accepted by UpdateActivity.
const (
	FieldIcon          = "icon"
	FieldTitle         = "title"
	FieldDescription   = "description"
	FieldImage         = "image"
	FieldImagePosition = "imagePosition"
	FieldAttractionID  = "attraction_id"
	FieldStartTime     = "startTime"
	FieldEndTime       = "endTime"
)

func (a *ActivityRecord) set(field, value string) error {
	switch field {
	case FieldIcon:
		a.Icon = value
	case FieldTitle:
		a.Title = value
	case FieldDescription:
		a.Description = value
	case FieldImage:
		a.Image = value
	case FieldImagePosition:
		a.ImagePosition = value
	case FieldAttractionID:
		a.AttractionID = value
	case FieldStartTime:
		a.StartTime = value
	case FieldEndTime:
		a.EndTime = value
	default:
		return ErrUnknownField
	}
	return nil
}

// IsManual reports whether the activity points at a local, unsaved record.
func (a ActivityRecord) IsManual() bool {
	return strings.HasPrefix(a.AttractionID, ManualIDPrefix)
}

// CanPromote reports whether the activity may be saved to the attraction
// catalog: it has no catalog link yet (absent or manual id) and a title.
func CanPromote(a ActivityRecord) bool {
	if strings.TrimSpace(a.Title) == "" {
		return false
	}
	return a.AttractionID == "" || a.IsManual()
}

// DayPatch carries optional day-level field updates. Nil fields are left
// untouched.
type DayPatch struct {
	Title               *string
	Highlight           *string
	Description         *string
	Date                *string
	IsAlternative       *bool
	Meals               *Meals
	Accommodation       *string
	AccommodationRating *int
	AccommodationURL    *string
	IsSameAccommodation *bool
	LocationLabel       *string
	DisplayStyle        *string
}

func (p DayPatch) apply(d *DayRecord) {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Highlight != nil {
		d.Highlight = *p.Highlight
	}
	if p.Description != nil {
		d.Description = *p.Description
	}
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.IsAlternative != nil {
		d.IsAlternative = *p.IsAlternative
	}
	if p.Meals != nil {
		d.Meals = *p.Meals
	}
	if p.Accommodation != nil {
		d.Accommodation = *p.Accommodation
	}
	if p.AccommodationRating != nil {
		d.AccommodationRating = clampRating(*p.AccommodationRating)
	}
	if p.AccommodationURL != nil {
		d.AccommodationURL = *p.AccommodationURL
	}
	if p.IsSameAccommodation != nil {
		d.IsSameAccommodation = *p.IsSameAccommodation
	}
	if p.LocationLabel != nil {
		d.LocationLabel = *p.LocationLabel
	}
	if p.DisplayStyle != nil {
		d.DisplayStyle = *p.DisplayStyle
	}
}

func clampRating(r int) int {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}
