// Package app wires configuration into the store client and the sandbox API.
package app

import (
	"context"
	"fmt"
	"net/url"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mystore/store-client/internal/core/ports"
	"github.com/mystore/store-client/internal/core/service"
	"github.com/mystore/store-client/internal/infrastructure/config"
	"github.com/mystore/store-client/internal/infrastructure/db/redis"
	"github.com/mystore/store-client/internal/infrastructure/geo"
	"github.com/mystore/store-client/internal/infrastructure/httpclient"
	"github.com/mystore/store-client/internal/infrastructure/tokenstore"
)

const userAgent = "storectl/1.0"

// Client bundles the services of the store client around one token store.
type Client struct {
	Auth     *service.AuthService
	Products *service.ProductService
	Maps     *service.MapsService
	Tokens   ports.TokenStore

	rdb *goredis.Client
}

// NewClient builds the client services described by cfg. The caller must
// Close the returned client.
func NewClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Client, error) {
	c := &Client{}

	tokens, err := c.initTokenStore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	c.Tokens = tokens

	doer := httpclient.NewHTTPClient(cfg.API.Timeout)
	api, err := httpclient.New(cfg.API.URL, doer, log, httpclient.UserAgent(userAgent))
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("api client: %w", err)
	}
	authed := api.With(httpclient.BearerAuth(tokens))

	c.Auth = service.NewAuthService(api, authed, tokens, log)
	c.Products = service.NewProductService(authed, log)

	provider, err := newPositionProvider(cfg, doer, log)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.Maps = service.NewMapsService(provider, log)

	return c, nil
}

func (c *Client) initTokenStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.TokenStore, error) {
	if cfg.TokenStore.Kind != config.TokenStoreRedis {
		return tokenstore.NewMemory(), nil
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("token store: %w", err)
	}
	c.rdb = rdb

	log.Debug().Str("addr", cfg.Redis.Addr).Str("key", cfg.Redis.TokenKey).Msg("using redis token store")
	return tokenstore.NewRedis(rdb, cfg.Redis.TokenKey, cfg.Redis.TokenTTL), nil
}

func newPositionProvider(cfg *config.Config, doer ports.HTTPDoer, log zerolog.Logger) (ports.PositionProvider, error) {
	if cfg.Geo.Provider != config.GeoProviderHTTP {
		return geo.NewStaticProvider(cfg.Geo.Lat, cfg.Geo.Lng), nil
	}

	u, err := url.Parse(cfg.Geo.URL)
	if err != nil {
		return nil, fmt.Errorf("geo url: %w", err)
	}
	base := url.URL{Scheme: u.Scheme, Host: u.Host, RawQuery: u.RawQuery}
	api, err := httpclient.New(base.String(), doer, log, httpclient.UserAgent(userAgent))
	if err != nil {
		return nil, fmt.Errorf("geo client: %w", err)
	}
	return geo.NewHTTPProvider(api, u.Path, log), nil
}

func (c *Client) Close() {
	if c.rdb != nil {
		_ = c.rdb.Close()
	}
}
