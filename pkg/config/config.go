package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	PostgresURL string
	JWTSecret   string
	RedisURL    string
	AutoMigrate bool

	BlobBackend       string
	BlobLocalDir      string
	BlobPublicBaseURL string
	BlobHTTPEndpoint  string
	BlobHTTPToken     string
	BlobBucket        string

	SelectorSessionTTL time.Duration
	CatalogCacheTTL    time.Duration
	UploadRatePerMin   int
	CORSAllowedOrigins []string
}

const (
	BlobBackendLocal = "local"
	BlobBackendHTTP  = "http"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db_auto_migrate", false)
	v.SetDefault("blob_backend", BlobBackendLocal)
	v.SetDefault("blob_local_dir", "./uploads")
	v.SetDefault("blob_public_base_url", "/uploads")
	v.SetDefault("blob_bucket", "workspace-files")
	v.SetDefault("selector_session_ttl", "30m")
	v.SetDefault("catalog_cache_ttl", "5m")
	v.SetDefault("upload_rate_per_min", 30)
	v.SetDefault("cors_allowed_origins", "*")
}

// Load reads .env (if present) into the process environment and resolves
// every key through viper.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[config] no .env file loaded: %v", err)
	}
	return FromViper(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for _, key := range []string{
		"port", "postgres_url", "jwt_secret", "redis_url", "db_auto_migrate",
		"blob_backend", "blob_local_dir", "blob_public_base_url",
		"blob_http_endpoint", "blob_http_token", "blob_bucket",
		"selector_session_ttl", "catalog_cache_ttl", "upload_rate_per_min",
		"cors_allowed_origins",
	} {
		_ = v.BindEnv(key, strings.ToUpper(key))
	}
	v.AutomaticEnv()
	return v
}

func FromViper(v *viper.Viper) *Config {
	cfg := &Config{
		Port:               v.GetString("port"),
		PostgresURL:        v.GetString("postgres_url"),
		JWTSecret:          v.GetString("jwt_secret"),
		RedisURL:           v.GetString("redis_url"),
		AutoMigrate:        v.GetBool("db_auto_migrate"),
		BlobBackend:        strings.ToLower(v.GetString("blob_backend")),
		BlobLocalDir:       v.GetString("blob_local_dir"),
		BlobPublicBaseURL:  strings.TrimRight(v.GetString("blob_public_base_url"), "/"),
		BlobHTTPEndpoint:   strings.TrimRight(v.GetString("blob_http_endpoint"), "/"),
		BlobHTTPToken:      v.GetString("blob_http_token"),
		BlobBucket:         v.GetString("blob_bucket"),
		SelectorSessionTTL: v.GetDuration("selector_session_ttl"),
		CatalogCacheTTL:    v.GetDuration("catalog_cache_ttl"),
		UploadRatePerMin:   v.GetInt("upload_rate_per_min"),
		CORSAllowedOrigins: splitList(v.GetString("cors_allowed_origins")),
	}
	if cfg.SelectorSessionTTL <= 0 {
		cfg.SelectorSessionTTL = 30 * time.Minute
	}
	if cfg.CatalogCacheTTL <= 0 {
		cfg.CatalogCacheTTL = 5 * time.Minute
	}
	if cfg.UploadRatePerMin <= 0 {
		cfg.UploadRatePerMin = 30
	}
	return cfg
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
