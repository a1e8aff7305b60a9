package repositories

import (
	"testing"

	"github.com/Corner-venturo/Corner-sub004/internal/models/db_models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database. One connection keeps every
// query, transactions included, on the same memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&db_models.Tour{},
		&db_models.ImageLibraryEntry{},
		&db_models.Country{},
		&db_models.Region{},
		&db_models.City{},
	))

	// Catalog place tables use Postgres text[] columns; SQLite gets plain
	// text columns holding the array literal.
	for _, table := range []string{"attractions", "hotels", "restaurants", "michelin_restaurants"} {
		require.NoError(t, db.Exec(`CREATE TABLE `+table+` (
			id text PRIMARY KEY,
			created_at integer,
			updated_at integer,
			deleted_at datetime,
			name text, name_en text, category text, description text,
			thumbnail text, images text,
			country_id text, region_id text, city_id text,
			is_active numeric, display_order integer,
			aliases text, workspace_id text,
			brand text, star_rating integer, hotel_class text,
			price_range text, is_featured numeric,
			cuisine_type text, michelin_stars integer
		)`).Error)
	}
	return db
}
