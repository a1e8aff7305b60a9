package config_fx

import (
	"github.com/Corner-venturo/Corner-sub004/pkg/config"
	"github.com/Corner-venturo/Corner-sub004/pkg/utils"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(config.Load),
	fx.Invoke(configureJWT))

func configureJWT(cfg *config.Config) {
	utils.SetJWTSecret(cfg.JWTSecret)
}
