package config

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.URL != "http://localhost:8080" || cfg.API.Timeout != 10*time.Second {
		t.Fatalf("unexpected api config: %+v", cfg.API)
	}
	if cfg.TokenStore.Kind != TokenStoreMemory {
		t.Fatalf("expected memory token store, got %q", cfg.TokenStore.Kind)
	}
	if cfg.Redis.TokenKey != "mystore:access_token" || cfg.Redis.TokenTTL != 0 {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.Geo.Provider != GeoProviderStatic {
		t.Fatalf("expected static geo provider, got %q", cfg.Geo.Provider)
	}
	if cfg.Server.Port != "8080" || cfg.Server.JWTTTL != 24*time.Hour || cfg.Server.CatalogStore != CatalogStoreMemory {
		t.Fatalf("unexpected server config: %+v", cfg.Server)
	}
	if !cfg.Seed.Products || !cfg.IsDevelopment() {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"ENV":             "production",
		"API_URL":         "https://api.escuelajs.co",
		"API_TIMEOUT":     "3s",
		"TOKEN_STORE":     "redis",
		"REDIS_TOKEN_TTL": "1h",
		"GEO_PROVIDER":    "http",
		"GEO_URL":         "https://ipapi.co/json",
		"GEO_LAT":         "4.6",
		"GEO_LNG":         "-74.08",
		"CATALOG_STORE":   "mongo",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.URL != "https://api.escuelajs.co" || cfg.API.Timeout != 3*time.Second {
		t.Fatalf("unexpected api config: %+v", cfg.API)
	}
	if cfg.TokenStore.Kind != TokenStoreRedis || cfg.Redis.TokenTTL != time.Hour {
		t.Fatalf("unexpected token store config: %+v %+v", cfg.TokenStore, cfg.Redis)
	}
	if cfg.Geo.Lat != 4.6 || cfg.Geo.Lng != -74.08 {
		t.Fatalf("unexpected geo config: %+v", cfg.Geo)
	}
	if cfg.IsDevelopment() {
		t.Fatalf("expected production")
	}
}

func TestLoadWith_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"token store", map[string]string{"TOKEN_STORE": "disk"}, "TOKEN_STORE"},
		{"geo provider", map[string]string{"GEO_PROVIDER": "gps"}, "GEO_PROVIDER"},
		{"geo url", map[string]string{"GEO_PROVIDER": "http"}, "GEO_URL"},
		{"catalog store", map[string]string{"CATALOG_STORE": "sqlite"}, "CATALOG_STORE"},
		{"bad duration", map[string]string{"API_TIMEOUT": "soon"}, "Timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWith(context.Background(), envconfig.MapLookuper(tt.env))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %s, got %v", tt.want, err)
			}
		})
	}
}
