package memcache_fx

import (
	"log"
	"time"

	"github.com/Corner-venturo/Corner-sub004/pkg/config"
	mem "github.com/Corner-venturo/Corner-sub004/pkg/memcache"
	"go.uber.org/fx"
)

// Remembered selector filters outlive any one session.
const preferencesTTL = 30 * 24 * time.Hour

var Module = fx.Provide(provideSelectorPreferences)

func provideSelectorPreferences(cfg *config.Config) mem.SelectorPreferences {
	if cfg.RedisURL == "" {
		return mem.NewMemoryPreferences(preferencesTTL)
	}
	client, err := mem.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Printf("Failed to connect to redis, keeping selector preferences in memory: %v", err)
		return mem.NewMemoryPreferences(preferencesTTL)
	}
	return mem.NewRedisPreferences(client, preferencesTTL)
}
