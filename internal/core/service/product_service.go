package service

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mystore/store-client/internal/core/domain"
	"github.com/mystore/store-client/internal/core/ports"
)

const (
	productsPath   = "/api/v1/products"
	categoriesPath = "/api/v1/categories"
)

// ProductService is the client for the products resource. Each call issues a
// single request; ReadAndUpdate issues two in parallel.
type ProductService struct {
	api ports.APIClient
	log zerolog.Logger
}

var _ ports.ProductService = (*ProductService)(nil)

// NewProductService expects api to attach the session token.
func NewProductService(api ports.APIClient, log zerolog.Logger) *ProductService {
	return &ProductService{api: api, log: log}
}

// GetAllSimple lists products as the backend returns them.
func (s *ProductService) GetAllSimple(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.api.Get(ctx, productsPath, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetAll lists products with taxes filled in. A nil page sends no
// pagination parameters.
func (s *ProductService) GetAll(ctx context.Context, page *ports.Page) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.api.Get(ctx, productsPath, pageQuery(page), &products); err != nil {
		return nil, err
	}
	return withTaxes(products), nil
}

func (s *ProductService) GetByCategory(ctx context.Context, categoryID int, page *ports.Page) ([]domain.Product, error) {
	var products []domain.Product
	path := categoriesPath + "/" + strconv.Itoa(categoryID) + "/products"
	if err := s.api.Get(ctx, path, pageQuery(page), &products); err != nil {
		return nil, err
	}
	return withTaxes(products), nil
}

// GetOne fetches a single product. A 404 is reported as
// domain.ErrProductNotFound.
func (s *ProductService) GetOne(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := s.api.Get(ctx, productPath(id), nil, &p); err != nil {
		s.log.Debug().Err(err).Str("product_id", id).Msg("get product failed")
		return nil, translateError(err)
	}
	return &p, nil
}

func (s *ProductService) Create(ctx context.Context, dto domain.CreateProductDTO) (*domain.Product, error) {
	var p domain.Product
	if err := s.api.Post(ctx, productsPath, dto, &p); err != nil {
		return nil, err
	}
	s.log.Info().Str("product_id", p.ID).Msg("product created")
	return &p, nil
}

func (s *ProductService) Update(ctx context.Context, id string, dto domain.UpdateProductDTO) (*domain.Product, error) {
	var p domain.Product
	if err := s.api.Put(ctx, productPath(id), dto, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete returns the acknowledgement sent by the backend.
func (s *ProductService) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	if err := s.api.Delete(ctx, productPath(id), &deleted); err != nil {
		return false, err
	}
	return deleted, nil
}

// ReadAndUpdate reads and updates the same product concurrently. The read
// result may reflect the state before or after the update.
func (s *ProductService) ReadAndUpdate(ctx context.Context, id string, dto domain.UpdateProductDTO) (*domain.Product, *domain.Product, error) {
	var read, updated *domain.Product

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		read, err = s.GetOne(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		updated, err = s.Update(gctx, id, dto)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return read, updated, nil
}

func productPath(id string) string {
	return productsPath + "/" + url.PathEscape(id)
}

func pageQuery(page *ports.Page) url.Values {
	if page == nil {
		return nil
	}
	return url.Values{
		"limit":  {strconv.Itoa(page.Limit)},
		"offset": {strconv.Itoa(page.Offset)},
	}
}

func withTaxes(products []domain.Product) []domain.Product {
	out := make([]domain.Product, len(products))
	for i, p := range products {
		out[i] = p.WithTaxes()
	}
	return out
}

// translateError maps the statuses the storefront has a message for; any
// other error is returned unchanged.
func translateError(err error) error {
	var se ports.StatusError
	if !errors.As(err, &se) {
		return err
	}
	switch se.HTTPStatus() {
	case http.StatusNotFound:
		return domain.ErrProductNotFound
	case http.StatusConflict:
		return domain.ErrServerConflict
	case http.StatusUnauthorized:
		return domain.ErrNotAllowed
	}
	return err
}
