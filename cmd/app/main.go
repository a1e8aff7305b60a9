package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Corner-venturo/Corner-sub004/cmd/fx/catalog_fx"
	"github.com/Corner-venturo/Corner-sub004/cmd/fx/config_fx"
	"github.com/Corner-venturo/Corner-sub004/cmd/fx/controllers_fx"
	"github.com/Corner-venturo/Corner-sub004/cmd/fx/db_fx"
	"github.com/Corner-venturo/Corner-sub004/cmd/fx/library_fx"
	"github.com/Corner-venturo/Corner-sub004/cmd/fx/memcache_fx"
	"github.com/Corner-venturo/Corner-sub004/cmd/fx/selector_fx"
	"github.com/Corner-venturo/Corner-sub004/cmd/fx/tour_fx"
	"github.com/Corner-venturo/Corner-sub004/internal/api/controllers"
	"github.com/Corner-venturo/Corner-sub004/internal/infra"
	"github.com/Corner-venturo/Corner-sub004/pkg/config"
	"github.com/Corner-venturo/Corner-sub004/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		catalog_fx.Module,
		tour_fx.Module,
		selector_fx.Module,
		library_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: cors.New(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Trace-ID"},
			ExposedHeaders:   []string{"X-Trace-ID"},
			AllowCredentials: true,
		}).Handler(engine),
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server at :%s", cfg.Port)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg *config.Config,
	blobs infra.BlobStore,
	tourController *controllers.TourController,
	catalogController *controllers.CatalogController,
	selectorController *controllers.SelectorController,
	libraryController *controllers.LibraryController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.NoticeMiddleware())

	if local, ok := blobs.(*infra.LocalBlobStore); ok && strings.HasPrefix(cfg.BlobPublicBaseURL, "/") {
		r.Static(cfg.BlobPublicBaseURL, local.Dir())
	}

	controllers.RegisterRoutes(r,
		middleware.JWTAuthMiddleware(),
		middleware.NewRateLimiter(cfg.UploadRatePerMin).Limit(),
		tourController,
		catalogController,
		selectorController,
		libraryController)

	return r
}
