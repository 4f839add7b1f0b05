package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mystore/store-client/internal/core/domain"
	"github.com/mystore/store-client/internal/core/ports"
)

type stubProductRepo struct {
	products map[string]domain.Product
	order    []string
	nextID   int

	lastFilter ports.ListProductsFilter
	createErr  error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[string]domain.Product)}
}

func (r *stubProductRepo) List(_ context.Context, filter ports.ListProductsFilter) ([]domain.Product, error) {
	r.lastFilter = filter
	out := make([]domain.Product, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.products[id])
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &p, nil
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	p.ID = strconv.Itoa(r.nextID)
	r.products[p.ID] = *p
	r.order = append(r.order, p.ID)
	return nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.products[p.ID] = *p
	return nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

func sampleCreateDTO() domain.CreateProductDTO {
	return domain.CreateProductDTO{
		Title:       "Camisa",
		Price:       100,
		Images:      []string{"https://img/1.png"},
		Description: "Camisa de algodon",
		CategoryID:  1,
	}
}

func TestCatalogService_Create(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	p, err := svc.Create(context.Background(), sampleCreateDTO())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == "" {
		t.Fatalf("expected id to be assigned")
	}
	if stored, _ := repo.FindByID(context.Background(), p.ID); stored.Title != "Camisa" {
		t.Fatalf("product not stored: %+v", stored)
	}
}

func TestCatalogService_Create_RepoError(t *testing.T) {
	repo := newStubProductRepo()
	repo.createErr = errors.New("db down")
	svc := NewCatalogService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), sampleCreateDTO()); !errors.Is(err, repo.createErr) {
		t.Fatalf("expected repo error, got %v", err)
	}
}

func TestCatalogService_List(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewCatalogService(repo, zerolog.Nop())
	_, _ = svc.Create(context.Background(), sampleCreateDTO())

	ten := 10
	filter := ports.ListProductsFilter{CategoryID: 1, Limit: &ten, Offset: 0}
	products, err := svc.List(context.Background(), filter)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if repo.lastFilter != filter {
		t.Fatalf("filter not forwarded: %+v", repo.lastFilter)
	}
}

func TestCatalogService_List_NegativePagination(t *testing.T) {
	svc := NewCatalogService(newStubProductRepo(), zerolog.Nop())

	negative := -1
	if _, err := svc.List(context.Background(), ports.ListProductsFilter{Limit: &negative}); err != domain.ErrInvalidPagination {
		t.Fatalf("expected ErrInvalidPagination, got %v", err)
	}
	if _, err := svc.List(context.Background(), ports.ListProductsFilter{Offset: -3}); err != domain.ErrInvalidPagination {
		t.Fatalf("expected ErrInvalidPagination, got %v", err)
	}
}

func TestCatalogService_Update_AppliesSetFields(t *testing.T) {
	svc := NewCatalogService(newStubProductRepo(), zerolog.Nop())
	created, _ := svc.Create(context.Background(), sampleCreateDTO())

	price := 250.0
	updated, err := svc.Update(context.Background(), created.ID, domain.UpdateProductDTO{Price: &price})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Price != 250 || updated.Title != "Camisa" {
		t.Fatalf("unexpected product: %+v", updated)
	}
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	svc := NewCatalogService(newStubProductRepo(), zerolog.Nop())

	if _, err := svc.Update(context.Background(), "404", domain.UpdateProductDTO{}); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogService_Delete(t *testing.T) {
	svc := NewCatalogService(newStubProductRepo(), zerolog.Nop())
	created, _ := svc.Create(context.Background(), sampleCreateDTO())

	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); err != domain.ErrProductNotFound {
		t.Fatalf("expected product to be gone, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != domain.ErrProductNotFound {
		t.Fatalf("expected ErrProductNotFound on second delete, got %v", err)
	}
}
