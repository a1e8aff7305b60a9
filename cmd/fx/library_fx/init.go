package library_fx

import (
	"github.com/Corner-venturo/Corner-sub004/internal/infra"
	"github.com/Corner-venturo/Corner-sub004/internal/repositories"
	"github.com/Corner-venturo/Corner-sub004/internal/services"
	"github.com/Corner-venturo/Corner-sub004/pkg/config"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideBlobStore, provideImageLibraryService)

func provideBlobStore(cfg *config.Config) infra.BlobStore {
	return infra.NewBlobStore(cfg)
}

func provideImageLibraryService(
	libraryRepo repositories.ImageLibraryRepository,
	blobs infra.BlobStore,
	itinerary services.ItineraryServiceInterface) services.ImageLibraryServiceInterface {
	return services.NewImageLibraryService(libraryRepo, blobs, itinerary)
}
