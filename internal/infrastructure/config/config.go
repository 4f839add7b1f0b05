package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	TokenStoreMemory = "memory"
	TokenStoreRedis  = "redis"

	GeoProviderStatic = "static"
	GeoProviderHTTP   = "http"

	CatalogStoreMemory = "memory"
	CatalogStoreMongo  = "mongo"
)

type Config struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	API        APIConfig
	TokenStore TokenStoreConfig
	Redis      RedisConfig
	Geo        GeoConfig

	Server ServerConfig
	Mongo  MongoConfig
	Seed   SeedConfig
}

// APIConfig points the client at the catalog backend.
type APIConfig struct {
	URL     string        `env:"API_URL,     default=http://localhost:8080"`
	Timeout time.Duration `env:"API_TIMEOUT, default=10s"`
}

type TokenStoreConfig struct {
	Kind string `env:"TOKEN_STORE, default=memory"`
}

type RedisConfig struct {
	Addr     string        `env:"REDIS_ADDR,      default=localhost:6379"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB,        default=0"`
	TokenKey string        `env:"REDIS_TOKEN_KEY, default=mystore:access_token"`
	TokenTTL time.Duration `env:"REDIS_TOKEN_TTL"`
}

// GeoConfig selects where position readings come from. The static provider
// always reports Lat/Lng.
type GeoConfig struct {
	Provider string  `env:"GEO_PROVIDER, default=static"`
	URL      string  `env:"GEO_URL"`
	Lat      float64 `env:"GEO_LAT, default=0"`
	Lng      float64 `env:"GEO_LNG, default=0"`
}

// ServerConfig configures the sandbox catalog API.
type ServerConfig struct {
	Port         string        `env:"PORT,          default=8080"`
	JWTSecret    string        `env:"JWT_SECRET"`
	JWTTTL       time.Duration `env:"JWT_TTL,       default=24h"`
	CatalogStore string        `env:"CATALOG_STORE, default=memory"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=mystore"`
}

type SeedConfig struct {
	AdminEmail       string `env:"SEED_ADMIN_EMAIL,       default=admin@mail.com"`
	AdminPassword    string `env:"SEED_ADMIN_PASSWORD,    default=admin123"`
	CustomerEmail    string `env:"SEED_CUSTOMER_EMAIL,    default=customer@mail.com"`
	CustomerPassword string `env:"SEED_CUSTOMER_PASSWORD, default=customer123"`
	Products         bool   `env:"SEED_PRODUCTS,          default=true"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	switch c.TokenStore.Kind {
	case TokenStoreMemory, TokenStoreRedis:
	default:
		errs = append(errs, fmt.Errorf("TOKEN_STORE must be %q or %q, got %q", TokenStoreMemory, TokenStoreRedis, c.TokenStore.Kind))
	}
	switch c.Geo.Provider {
	case GeoProviderStatic:
	case GeoProviderHTTP:
		if c.Geo.URL == "" {
			errs = append(errs, errors.New("GEO_URL is required when GEO_PROVIDER=http"))
		}
	default:
		errs = append(errs, fmt.Errorf("GEO_PROVIDER must be %q or %q, got %q", GeoProviderStatic, GeoProviderHTTP, c.Geo.Provider))
	}
	switch c.Server.CatalogStore {
	case CatalogStoreMemory, CatalogStoreMongo:
	default:
		errs = append(errs, fmt.Errorf("CATALOG_STORE must be %q or %q, got %q", CatalogStoreMemory, CatalogStoreMongo, c.Server.CatalogStore))
	}
	return errors.Join(errs...)
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
