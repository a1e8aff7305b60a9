package catalog_fx

import (
	"github.com/Corner-venturo/Corner-sub004/internal/repositories"
	"github.com/Corner-venturo/Corner-sub004/internal/services"
	"github.com/Corner-venturo/Corner-sub004/pkg/config"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideCatalogRepo, provideCatalogService)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func provideCatalogService(repo repositories.CatalogRepository, cfg *config.Config) services.CatalogServiceInterface {
	return services.NewCatalogService(repo, cfg.CatalogCacheTTL)
}
