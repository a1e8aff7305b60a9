package db_models

// Location rows are keyed by short slugs ("jp", "kansai") shared with the
// catalog tables, so they carry a string id instead of BaseModel.
type Country struct {
	ID       string `gorm:"primaryKey"`
	Name     string `gorm:"index"`
	IsActive bool
}

type Region struct {
	ID        string `gorm:"primaryKey"`
	CountryID string `gorm:"index"`
	Name      string
	IsActive  bool
}

type City struct {
	ID        string `gorm:"primaryKey"`
	CountryID string `gorm:"index"`
	RegionID  string `gorm:"index"`
	Name      string
	IsActive  bool
}
