package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/Corner-venturo/Corner-sub004/internal/infra"
	"github.com/Corner-venturo/Corner-sub004/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TourRepository interface {
	Create(ctx context.Context, tour *db_models.Tour) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Tour, error)
	ListByWorkspace(ctx context.Context, workspaceID string, page, pageSize int) ([]db_models.Tour, error)

	// Mutate loads the tour under a row lock, hands it to fn and writes the
	// day list back in the same transaction. fn errors roll back. A missing
	// tour yields (nil, nil) and fn is not called.
	Mutate(ctx context.Context, id string, fn func(tour *db_models.Tour) error) (*db_models.Tour, error)
}

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) Create(ctx context.Context, tour *db_models.Tour) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(tour).Error; err != nil {
		return uuid.Nil, err
	}
	return tour.ID, nil
}

func (r *tourRepository) GetByID(ctx context.Context, id string) (*db_models.Tour, error) {
	var tour db_models.Tour
	err := r.db.WithContext(ctx).First(&tour, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tour, nil
}

func (r *tourRepository) ListByWorkspace(ctx context.Context, workspaceID string, page, pageSize int) ([]db_models.Tour, error) {
	var tours []db_models.Tour
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("updated_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&tours).Error
	if err != nil {
		return nil, err
	}
	return tours, nil
}

func (r *tourRepository) Mutate(ctx context.Context, id string, fn func(tour *db_models.Tour) error) (*db_models.Tour, error) {
	tx := infra.StartTransaction(r.db.WithContext(ctx))
	if tx.Error != nil {
		return nil, tx.Error
	}

	var tour db_models.Tour
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&tour, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = infra.ReleaseTransaction(tx, err)
		return nil, nil
	}
	if err == nil {
		err = fn(&tour)
	}
	if err == nil {
		tour.UpdatedAt = time.Now().Unix()
		err = tx.Model(&db_models.Tour{}).
			Where("id = ?", tour.ID).
			UpdateColumns(map[string]interface{}{
				"days":       tour.Days,
				"updated_at": tour.UpdatedAt,
			}).Error
	}
	if err := infra.ReleaseTransaction(tx, err); err != nil {
		return nil, err
	}
	return &tour, nil
}
