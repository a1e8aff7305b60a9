package db_models

import "gorm.io/datatypes"

// Tour keeps the day list as a jsonb document; the row is the unit the
// itinerary service locks and rewrites.
type Tour struct {
	BaseModel
	WorkspaceID    string `gorm:"index;not null"`
	Title          string
	Country        string
	CountryID      string
	ItineraryStyle string
	Days           datatypes.JSON `gorm:"type:jsonb"`
}
