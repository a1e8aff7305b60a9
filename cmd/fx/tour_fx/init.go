package tour_fx

import (
	"github.com/Corner-venturo/Corner-sub004/internal/repositories"
	"github.com/Corner-venturo/Corner-sub004/internal/services"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideTourRepo, provideImageLibraryRepo, provideItineraryService)

func provideTourRepo(db *gorm.DB) repositories.TourRepository {
	return repositories.NewTourRepository(db)
}

func provideImageLibraryRepo(db *gorm.DB) repositories.ImageLibraryRepository {
	return repositories.NewImageLibraryRepository(db)
}

func provideItineraryService(
	tourRepo repositories.TourRepository,
	libraryRepo repositories.ImageLibraryRepository,
	catalog services.CatalogServiceInterface) services.ItineraryServiceInterface {
	return services.NewItineraryService(tourRepo, libraryRepo, catalog)
}
