package ports

import (
	"context"

	"github.com/mystore/store-client/internal/core/domain"
)

// Page carries pagination query parameters.
type Page struct {
	Limit  int
	Offset int
}

// ProductService is the client-side view of the products resource.
type ProductService interface {
	GetAllSimple(ctx context.Context) ([]domain.Product, error)
	GetAll(ctx context.Context, page *Page) ([]domain.Product, error)
	GetByCategory(ctx context.Context, categoryID int, page *Page) ([]domain.Product, error)
	GetOne(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, dto domain.CreateProductDTO) (*domain.Product, error)
	Update(ctx context.Context, id string, dto domain.UpdateProductDTO) (*domain.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
	ReadAndUpdate(ctx context.Context, id string, dto domain.UpdateProductDTO) (read, updated *domain.Product, err error)
}

// ListProductsFilter carries the query of a backend product listing.
// A nil Limit means no limit; a zero Limit selects an empty page.
type ListProductsFilter struct {
	CategoryID int // 0 = any category
	Limit      *int
	Offset     int
}

// ProductRepository defines persistence for the backend catalog.
type ProductRepository interface {
	List(ctx context.Context, filter ListProductsFilter) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) error
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}

// CatalogService implements the backend product use cases.
type CatalogService interface {
	List(ctx context.Context, filter ListProductsFilter) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, dto domain.CreateProductDTO) (*domain.Product, error)
	Update(ctx context.Context, id string, dto domain.UpdateProductDTO) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
