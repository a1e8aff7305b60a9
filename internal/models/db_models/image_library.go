package db_models

import (
	"sync/atomic"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ImageLibraryEntry struct {
	BaseModel
	WorkspaceID string `gorm:"index"`
	Name        string `gorm:"index"`
	FilePath    string
	PublicURL   string
	Category    string
	Tags        datatypes.JSON `gorm:"type:jsonb"`
	// SavedAt breaks CreatedAt ties (whole seconds); strictly increasing
	// within a process.
	SavedAt int64 `gorm:"index"`
}

func (ImageLibraryEntry) TableName() string {
	return "image_library"
}

var lastSavedAt atomic.Int64

func nextSavedAt() int64 {
	for {
		last := lastSavedAt.Load()
		now := time.Now().UnixNano()
		if now <= last {
			now = last + 1
		}
		if lastSavedAt.CompareAndSwap(last, now) {
			return now
		}
	}
}

func (e *ImageLibraryEntry) BeforeCreate(tx *gorm.DB) error {
	if err := e.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if e.SavedAt == 0 {
		e.SavedAt = nextSavedAt()
	}
	return nil
}
