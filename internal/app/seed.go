package app

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/mystore/store-client/internal/core/domain"
	"github.com/mystore/store-client/internal/core/ports"
	"github.com/mystore/store-client/internal/infrastructure/config"
)

var sampleProducts = []domain.CreateProductDTO{
	{Title: "Camiseta clasica", Price: 100, Description: "Camiseta de algodon", CategoryID: 1, Images: []string{"https://placeimg.com/640/480/any?r=1"}},
	{Title: "Zapatillas urbanas", Price: 200, Description: "Zapatillas livianas", CategoryID: 4, Images: []string{"https://placeimg.com/640/480/any?r=2"}},
	{Title: "Audifonos", Price: 55, Description: "Audifonos inalambricos", CategoryID: 2, Images: []string{"https://placeimg.com/640/480/any?r=3"}},
	{Title: "Silla de madera", Price: 340, Description: "Silla para comedor", CategoryID: 3, Images: []string{"https://placeimg.com/640/480/any?r=4"}},
}

// seed creates the configured accounts and, on an empty catalog, the sample
// products. Existing accounts are left alone.
func seed(ctx context.Context, cfg config.SeedConfig, accounts ports.AccountService, catalog ports.CatalogService, log zerolog.Logger) error {
	users := []struct{ email, password, name, role string }{
		{cfg.AdminEmail, cfg.AdminPassword, "Admin", domain.RoleAdmin},
		{cfg.CustomerEmail, cfg.CustomerPassword, "Customer", domain.RoleCustomer},
	}
	for _, u := range users {
		if u.email == "" || u.password == "" {
			continue
		}
		_, err := accounts.Register(ctx, u.email, u.password, u.name, u.role)
		if err != nil && !errors.Is(err, domain.ErrUserExists) {
			return err
		}
	}

	if !cfg.Products {
		return nil
	}
	one := 1
	existing, err := catalog.List(ctx, ports.ListProductsFilter{Limit: &one})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, dto := range sampleProducts {
		if _, err := catalog.Create(ctx, dto); err != nil {
			return err
		}
	}
	log.Info().Int("products", len(sampleProducts)).Msg("catalog seeded")
	return nil
}
