package selector_fx

import (
	"github.com/Corner-venturo/Corner-sub004/internal/services"
	"github.com/Corner-venturo/Corner-sub004/pkg/config"
	mem "github.com/Corner-venturo/Corner-sub004/pkg/memcache"
	"go.uber.org/fx"
)

var Module = fx.Provide(provideSelectorService)

func provideSelectorService(
	catalog services.CatalogServiceInterface,
	itinerary services.ItineraryServiceInterface,
	prefs mem.SelectorPreferences,
	cfg *config.Config) services.SelectorServiceInterface {
	return services.NewSelectorService(catalog, itinerary, prefs, cfg.SelectorSessionTTL)
}
