package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/mystore/store-client/internal/core/domain"
	"github.com/mystore/store-client/internal/core/ports"
)

type stubCatalogService struct {
	listFn   func(ctx context.Context, filter ports.ListProductsFilter) ([]domain.Product, error)
	getFn    func(ctx context.Context, id string) (*domain.Product, error)
	createFn func(ctx context.Context, dto domain.CreateProductDTO) (*domain.Product, error)
	updateFn func(ctx context.Context, id string, dto domain.UpdateProductDTO) (*domain.Product, error)
	deleteFn func(ctx context.Context, id string) error
}

func (s *stubCatalogService) List(ctx context.Context, filter ports.ListProductsFilter) ([]domain.Product, error) {
	return s.listFn(ctx, filter)
}

func (s *stubCatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.getFn(ctx, id)
}

func (s *stubCatalogService) Create(ctx context.Context, dto domain.CreateProductDTO) (*domain.Product, error) {
	return s.createFn(ctx, dto)
}

func (s *stubCatalogService) Update(ctx context.Context, id string, dto domain.UpdateProductDTO) (*domain.Product, error) {
	return s.updateFn(ctx, id, dto)
}

func (s *stubCatalogService) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func TestProductHandler_List_Pagination(t *testing.T) {
	var got ports.ListProductsFilter
	stub := &stubCatalogService{
		listFn: func(ctx context.Context, filter ports.ListProductsFilter) ([]domain.Product, error) {
			got = filter
			return []domain.Product{{ID: "1", Price: 100}}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, rec := newTestContext(http.MethodGet, "/api/v1/products?limit=10&offset=3", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Limit == nil || *got.Limit != 10 || got.Offset != 3 || got.CategoryID != 0 {
		t.Fatalf("unexpected filter: %+v", got)
	}

	var products []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if _, ok := products[0]["taxes"]; ok {
		t.Fatalf("backend must not send taxes")
	}
}

func TestProductHandler_List_LimitPresence(t *testing.T) {
	var got ports.ListProductsFilter
	stub := &stubCatalogService{
		listFn: func(ctx context.Context, filter ports.ListProductsFilter) ([]domain.Product, error) {
			got = filter
			return []domain.Product{}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/api/v1/products?offset=2", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Limit != nil {
		t.Fatalf("absent limit must stay unset, got %d", *got.Limit)
	}

	c, _ = newTestContext(http.MethodGet, "/api/v1/products?limit=0&offset=2", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Limit == nil || *got.Limit != 0 {
		t.Fatalf("explicit zero limit lost: %+v", got)
	}
}

func TestProductHandler_List_InvalidQuery(t *testing.T) {
	handler := NewProductHandler(&stubCatalogService{})

	c, _ := newTestContext(http.MethodGet, "/api/v1/products?limit=ten", "")
	expectHTTPError(t, handler.List(c), http.StatusBadRequest)
}

func TestProductHandler_List_Empty(t *testing.T) {
	stub := &stubCatalogService{
		listFn: func(ctx context.Context, filter ports.ListProductsFilter) ([]domain.Product, error) {
			return []domain.Product{}, nil
		},
	}
	c, rec := newTestContext(http.MethodGet, "/api/v1/products", "")
	if err := NewProductHandler(stub).List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty array, got %s", rec.Body.String())
	}
}

func TestProductHandler_ListByCategory(t *testing.T) {
	var got ports.ListProductsFilter
	stub := &stubCatalogService{
		listFn: func(ctx context.Context, filter ports.ListProductsFilter) ([]domain.Product, error) {
			got = filter
			return []domain.Product{}, nil
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newTestContext(http.MethodGet, "/api/v1/categories/2/products?limit=5", "")
	c.SetParamNames("id")
	c.SetParamValues("2")
	if err := handler.ListByCategory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.CategoryID != 2 || got.Limit == nil || *got.Limit != 5 || got.Offset != 0 {
		t.Fatalf("unexpected filter: %+v", got)
	}

	bad, _ := newTestContext(http.MethodGet, "/api/v1/categories/x/products", "")
	bad.SetParamNames("id")
	bad.SetParamValues("x")
	expectHTTPError(t, handler.ListByCategory(bad), http.StatusBadRequest)
}

func TestProductHandler_Get_NotFound(t *testing.T) {
	stub := &stubCatalogService{
		getFn: func(ctx context.Context, id string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	}

	c, _ := newTestContext(http.MethodGet, "/api/v1/products/9", "")
	c.SetParamNames("id")
	c.SetParamValues("9")
	if err := NewProductHandler(stub).Get(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductHandler_Create(t *testing.T) {
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, dto domain.CreateProductDTO) (*domain.Product, error) {
			if dto.Title != "New Product" || dto.CategoryID != 12 || len(dto.Images) != 1 {
				t.Fatalf("unexpected dto: %+v", dto)
			}
			return &domain.Product{ID: "1", Title: dto.Title}, nil
		},
	}
	handler := NewProductHandler(stub)

	body := `{"title":"New Product","price":100,"images":["img"],"description":"bla bla bla","categoryId":12}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/products", body)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestProductHandler_Create_Validation(t *testing.T) {
	stub := &stubCatalogService{
		createFn: func(ctx context.Context, dto domain.CreateProductDTO) (*domain.Product, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewProductHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/api/v1/products", `{"title":"","price":-1,"images":[],"categoryId":0}`)
	err := handler.Create(c)
	expectHTTPError(t, err, http.StatusBadRequest)
	if !strings.Contains(err.Error(), "title is required") {
		t.Fatalf("expected json field names in message, got %v", err)
	}
}

func TestProductHandler_Update(t *testing.T) {
	stub := &stubCatalogService{
		updateFn: func(ctx context.Context, id string, dto domain.UpdateProductDTO) (*domain.Product, error) {
			if id != "1" || dto.Title == nil || *dto.Title != "New Product 2.0" || dto.Price != nil {
				t.Fatalf("unexpected update: %s %+v", id, dto)
			}
			return &domain.Product{ID: id, Title: *dto.Title}, nil
		},
	}

	c, rec := newTestContext(http.MethodPut, "/api/v1/products/1", `{"title":"New Product 2.0"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := NewProductHandler(stub).Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Delete(t *testing.T) {
	stub := &stubCatalogService{
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}

	c, rec := newTestContext(http.MethodDelete, "/api/v1/products/1", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	if err := NewProductHandler(stub).Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "true" {
		t.Fatalf("expected true, got %s", rec.Body.String())
	}
}
