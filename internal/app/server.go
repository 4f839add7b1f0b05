package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/mystore/store-client/internal/api"
	"github.com/mystore/store-client/internal/api/handler"
	"github.com/mystore/store-client/internal/core/ports"
	"github.com/mystore/store-client/internal/core/service"
	"github.com/mystore/store-client/internal/infrastructure/config"
	"github.com/mystore/store-client/internal/infrastructure/db/memory"
	"github.com/mystore/store-client/internal/infrastructure/db/mongo"
)

// Server is the sandbox catalog API.
type Server struct {
	cfg  *config.Config
	log  zerolog.Logger
	echo *echo.Echo
	http *http.Server

	accounts *service.AccountService
	catalog  *service.CatalogService
	mongo    *mongodriver.Client
	registry *prometheus.Registry
}

type ServerOption func(*Server)

// WithRegistry serves HTTP metrics from reg instead of the global registry.
func WithRegistry(reg *prometheus.Registry) ServerOption {
	return func(s *Server) { s.registry = reg }
}

// NewServer connects the configured storage, seeds it and builds the router.
func NewServer(ctx context.Context, cfg *config.Config, log zerolog.Logger, opts ...ServerOption) (*Server, error) {
	if cfg.Server.JWTSecret == "" {
		if !cfg.IsDevelopment() {
			return nil, errors.New("JWT_SECRET is required outside development")
		}
		cfg.Server.JWTSecret = "dev-secret"
		log.Warn().Msg("JWT_SECRET not set, using an insecure development secret")
	}

	s := &Server{cfg: cfg, log: log}
	for _, opt := range opts {
		opt(s)
	}

	users, products, checks, err := s.initRepositories(ctx)
	if err != nil {
		return nil, err
	}

	s.accounts = service.NewAccountService(users, cfg.Server.JWTSecret, cfg.Server.JWTTTL, log)
	s.catalog = service.NewCatalogService(products, log)

	if err := seed(ctx, cfg.Seed, s.accounts, s.catalog, log); err != nil {
		s.Close(ctx)
		return nil, fmt.Errorf("seed: %w", err)
	}

	s.echo = api.NewRouter(api.Deps{
		Accounts:  s.accounts,
		Catalog:   s.catalog,
		JWTSecret: cfg.Server.JWTSecret,
		Log:       log,
		Checks:    checks,
		Registry:  s.registry,
	})
	s.http = &http.Server{
		Addr:              net.JoinHostPort("", cfg.Server.Port),
		Handler:           s.echo,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

func (s *Server) initRepositories(ctx context.Context) (ports.UserRepository, ports.ProductRepository, map[string]handler.Pinger, error) {
	if s.cfg.Server.CatalogStore != config.CatalogStoreMongo {
		return memory.NewUserRepository(), memory.NewProductRepository(), nil, nil
	}

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: s.cfg.Mongo.URI, Database: s.cfg.Mongo.Database})
	if err != nil {
		return nil, nil, nil, err
	}
	s.mongo = client

	users := mongo.NewUserRepository(db)
	products := mongo.NewProductRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to create user indexes")
	}
	if err := products.EnsureIndexes(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to create product indexes")
	}

	s.log.Info().Str("database", s.cfg.Mongo.Database).Msg("using mongodb catalog store")
	return users, products, map[string]handler.Pinger{"mongodb": mongo.Pinger{Client: client}}, nil
}

// Run serves until the listener fails or Close is called. stopFn is invoked
// when serving stops so the caller can begin shutdown.
func (s *Server) Run(stopFn context.CancelFunc) {
	defer stopFn()

	s.log.Info().Str("addr", s.http.Addr).Msg("sandbox api listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.log.Error().Err(err).Msg("unexpected server shutdown")
	}
}

func (s *Server) Close(ctx context.Context) {
	if s.http != nil {
		if err := s.http.Shutdown(ctx); err != nil {
			s.log.Error().Err(err).Msg("failed to shutdown gracefully")
		}
	}
	if s.mongo != nil {
		if err := s.mongo.Disconnect(ctx); err != nil {
			s.log.Error().Err(err).Msg("failed to disconnect mongodb")
		}
	}
	s.log.Info().Msg("sandbox api closed")
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
