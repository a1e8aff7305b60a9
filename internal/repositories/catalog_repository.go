package repositories

import (
	"context"

	"github.com/Corner-venturo/Corner-sub004/internal/models/db_models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogFilter narrows a catalog listing. CountryID is required by callers;
// the other fields are optional.
type CatalogFilter struct {
	CountryID string
	RegionID  string
	CityID    string
	Brand     string
}

type CatalogRepository interface {
	ListCountries(ctx context.Context) ([]db_models.Country, error)
	GetCountry(ctx context.Context, id string) (*db_models.Country, error)
	FindCountryByName(ctx context.Context, name string) (*db_models.Country, error)
	ListRegions(ctx context.Context, countryID string) ([]db_models.Region, error)
	ListCities(ctx context.Context, countryID, regionID string) ([]db_models.City, error)

	ListAttractions(ctx context.Context, f CatalogFilter) ([]db_models.Attraction, error)
	ListHotels(ctx context.Context, f CatalogFilter) ([]db_models.Hotel, error)
	ListRestaurants(ctx context.Context, f CatalogFilter) ([]db_models.Restaurant, error)
	ListMichelinRestaurants(ctx context.Context, f CatalogFilter) ([]db_models.MichelinRestaurant, error)

	CreateAttraction(ctx context.Context, a *db_models.Attraction) (uuid.UUID, error)
	DeleteAttraction(ctx context.Context, id string) error
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func activeOnly(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// placeFilter applies the location filters shared by every catalog table.
func placeFilter(f CatalogFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Where("country_id = ?", f.CountryID)
		if f.RegionID != "" {
			db = db.Where("region_id = ?", f.RegionID)
		}
		if f.CityID != "" {
			db = db.Where("city_id = ?", f.CityID)
		}
		return db
	}
}

func (r *catalogRepository) ListCountries(ctx context.Context) ([]db_models.Country, error) {
	var countries []db_models.Country
	err := r.db.WithContext(ctx).Scopes(activeOnly).Order("name").Find(&countries).Error
	if err != nil {
		return nil, err
	}
	return countries, nil
}

func (r *catalogRepository) GetCountry(ctx context.Context, id string) (*db_models.Country, error) {
	return r.firstCountry(ctx, "id = ?", id)
}

func (r *catalogRepository) FindCountryByName(ctx context.Context, name string) (*db_models.Country, error) {
	return r.firstCountry(ctx, "name = ?", name)
}

func (r *catalogRepository) firstCountry(ctx context.Context, query string, arg string) (*db_models.Country, error) {
	var rows []db_models.Country
	err := r.db.WithContext(ctx).Scopes(activeOnly).Where(query, arg).Limit(1).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (r *catalogRepository) ListRegions(ctx context.Context, countryID string) ([]db_models.Region, error) {
	var regions []db_models.Region
	err := r.db.WithContext(ctx).
		Scopes(activeOnly).
		Where("country_id = ?", countryID).
		Order("name").
		Find(&regions).Error
	if err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *catalogRepository) ListCities(ctx context.Context, countryID, regionID string) ([]db_models.City, error) {
	var cities []db_models.City
	q := r.db.WithContext(ctx).
		Scopes(activeOnly).
		Where("country_id = ?", countryID)
	if regionID != "" {
		q = q.Where("region_id = ?", regionID)
	}
	if err := q.Order("name").Find(&cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *catalogRepository) ListAttractions(ctx context.Context, f CatalogFilter) ([]db_models.Attraction, error) {
	var rows []db_models.Attraction
	err := r.db.WithContext(ctx).
		Scopes(activeOnly, placeFilter(f)).
		Order("display_order").
		Order("name").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *catalogRepository) ListHotels(ctx context.Context, f CatalogFilter) ([]db_models.Hotel, error) {
	var rows []db_models.Hotel
	q := r.db.WithContext(ctx).Scopes(activeOnly, placeFilter(f))
	if f.Brand != "" {
		q = q.Where("brand = ?", f.Brand)
	}
	err := q.Order("is_featured DESC").Order("display_order").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *catalogRepository) ListRestaurants(ctx context.Context, f CatalogFilter) ([]db_models.Restaurant, error) {
	var rows []db_models.Restaurant
	err := r.db.WithContext(ctx).
		Scopes(activeOnly, placeFilter(f)).
		Order("is_featured DESC").
		Order("display_order").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *catalogRepository) ListMichelinRestaurants(ctx context.Context, f CatalogFilter) ([]db_models.MichelinRestaurant, error) {
	var rows []db_models.MichelinRestaurant
	err := r.db.WithContext(ctx).
		Scopes(activeOnly, placeFilter(f)).
		Order("michelin_stars DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *catalogRepository) CreateAttraction(ctx context.Context, a *db_models.Attraction) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return uuid.Nil, err
	}
	return a.ID, nil
}

func (r *catalogRepository) DeleteAttraction(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&db_models.Attraction{}, "id = ?", id).Error
}
