package repositories

import (
	"context"

	"github.com/Corner-venturo/Corner-sub004/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImageLibraryRepository interface {
	Create(ctx context.Context, entry *db_models.ImageLibraryEntry) (uuid.UUID, error)
	// LatestByName returns the newest entry whose name matches exactly, or
	// (nil, nil).
	LatestByName(ctx context.Context, workspaceID, category, name string) (*db_models.ImageLibraryEntry, error)
}

type imageLibraryRepository struct {
	db *gorm.DB
}

func NewImageLibraryRepository(db *gorm.DB) ImageLibraryRepository {
	return &imageLibraryRepository{db: db}
}

func (r *imageLibraryRepository) Create(ctx context.Context, entry *db_models.ImageLibraryEntry) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return uuid.Nil, err
	}
	return entry.ID, nil
}

func (r *imageLibraryRepository) LatestByName(ctx context.Context, workspaceID, category, name string) (*db_models.ImageLibraryEntry, error) {
	var rows []db_models.ImageLibraryEntry
	err := r.db.WithContext(ctx).
		Where("workspace_id = ? AND category = ? AND name = ?", workspaceID, category, name).
		Order("created_at DESC").
		Order("saved_at DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}
