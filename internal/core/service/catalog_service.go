package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mystore/store-client/internal/core/domain"
	"github.com/mystore/store-client/internal/core/ports"
	"github.com/mystore/store-client/internal/metrics"
)

// CatalogService implements the product use cases of the sandbox API.
type CatalogService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

var _ ports.CatalogService = (*CatalogService)(nil)

func NewCatalogService(repo ports.ProductRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

func (s *CatalogService) List(ctx context.Context, filter ports.ListProductsFilter) ([]domain.Product, error) {
	if (filter.Limit != nil && *filter.Limit < 0) || filter.Offset < 0 {
		return nil, domain.ErrInvalidPagination
	}
	return s.repo.List(ctx, filter)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CatalogService) Create(ctx context.Context, dto domain.CreateProductDTO) (*domain.Product, error) {
	p := &domain.Product{
		Title:       dto.Title,
		Price:       dto.Price,
		Description: dto.Description,
		Images:      append([]string(nil), dto.Images...),
		CategoryID:  dto.CategoryID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.log.Error().Err(err).Msg("failed to create product")
		return nil, err
	}

	metrics.ProductsWrittenTotal.WithLabelValues("create").Inc()
	s.log.Info().Str("product_id", p.ID).Int("category_id", p.CategoryID).Msg("product created")
	return p, nil
}

// Update applies the fields present in dto and returns the stored product.
func (s *CatalogService) Update(ctx context.Context, id string, dto domain.UpdateProductDTO) (*domain.Product, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dto.Apply(p)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	metrics.ProductsWrittenTotal.WithLabelValues("update").Inc()
	return p, nil
}

func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.ProductsWrittenTotal.WithLabelValues("delete").Inc()
	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}
