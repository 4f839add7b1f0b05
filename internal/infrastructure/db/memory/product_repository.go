// Package memory holds the in-process repositories the sandbox API uses when
// no database is configured.
package memory

import (
	"context"
	"strconv"
	"sync"

	"github.com/mystore/store-client/internal/core/domain"
	"github.com/mystore/store-client/internal/core/ports"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products map[string]domain.Product
	order    []string
	nextID   int
}

var _ ports.ProductRepository = (*ProductRepository)(nil)

func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[string]domain.Product)}
}

// List returns products in insertion order. A nil limit means no limit.
func (r *ProductRepository) List(_ context.Context, filter ports.ListProductsFilter) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, 0)
	if filter.Limit != nil && *filter.Limit == 0 {
		return out, nil
	}
	skipped := 0
	for _, id := range r.order {
		p := r.products[id]
		if filter.CategoryID != 0 && p.CategoryID != filter.CategoryID {
			continue
		}
		if skipped < filter.Offset {
			skipped++
			continue
		}
		if filter.Limit != nil && len(out) == *filter.Limit {
			break
		}
		out = append(out, clone(p))
	}
	return out, nil
}

func (r *ProductRepository) FindByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	c := clone(p)
	return &c, nil
}

// Create assigns the next sequential id to p and stores a copy.
func (r *ProductRepository) Create(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = strconv.Itoa(r.nextID)
	r.products[p.ID] = clone(*p)
	r.order = append(r.order, p.ID)
	return nil
}

func (r *ProductRepository) Update(_ context.Context, p *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.products[p.ID] = clone(*p)
	return nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func clone(p domain.Product) domain.Product {
	p.Images = append([]string(nil), p.Images...)
	p.Taxes = 0
	return p
}
