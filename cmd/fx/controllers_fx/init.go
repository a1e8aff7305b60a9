package controllers_fx

import (
	"github.com/Corner-venturo/Corner-sub004/internal/api/controllers"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTourController),
	fx.Provide(controllers.NewCatalogController),
	fx.Provide(controllers.NewSelectorController),
	fx.Provide(controllers.NewLibraryController))
