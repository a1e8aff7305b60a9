package infra

import (
	"log"

	"github.com/Corner-venturo/Corner-sub004/internal/models/db_models"
	"github.com/Corner-venturo/Corner-sub004/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitPostgresql(cfg *config.Config) *gorm.DB {
	connectionPool, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{})
	if err != nil {
		log.Printf("Error connecting to database: %v", err)
		log.Fatal("Error connecting to database")
	}

	if cfg.AutoMigrate {
		if err := Migrate(connectionPool); err != nil {
			log.Fatalf("Error migrating database: %v", err)
		}
	}
	return connectionPool
}

// Migrate creates or updates every table the service reads or writes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Tour{},
		&db_models.Country{},
		&db_models.Region{},
		&db_models.City{},
		&db_models.Attraction{},
		&db_models.Hotel{},
		&db_models.Restaurant{},
		&db_models.MichelinRestaurant{},
		&db_models.ImageLibraryEntry{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting database instance: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("PostgreSQL database connection closed successfully")
	}
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	tx := db.Begin()
	if tx.Error != nil {
		log.Printf("Error starting transaction: %v", tx.Error)
	}
	return tx
}

// ReleaseTransaction rolls back when err is non-nil, otherwise commits and
// returns the commit error.
func ReleaseTransaction(tx *gorm.DB, err error) error {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			log.Printf("Error rollback transaction: %v", rollbackErr)
		}
		return err
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		log.Printf("Error committing transaction: %v", commitErr)
		return commitErr
	}
	return nil
}
