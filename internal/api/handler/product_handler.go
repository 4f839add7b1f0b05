package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/mystore/store-client/internal/core/domain"
	"github.com/mystore/store-client/internal/core/ports"
)

// ProductHandler serves the products resource and category listings.
type ProductHandler struct {
	catalog ports.CatalogService
}

func NewProductHandler(catalog ports.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List returns products, optionally paginated.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Param        limit   query     int  false  "Maximum number of products"
// @Param        offset  query     int  false  "Number of products to skip"
// @Success      200     {array}   domain.Product
// @Failure      400     {object}  errorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	filter, err := pageFilter(c)
	if err != nil {
		return err
	}

	products, err := h.catalog.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListByCategory returns the products of one category.
//
// @Summary      List products of a category
// @Tags         categories
// @Produce      json
// @Param        id      path      int  true   "Category ID"
// @Param        limit   query     int  false  "Maximum number of products"
// @Param        offset  query     int  false  "Number of products to skip"
// @Success      200     {array}   domain.Product
// @Failure      400     {object}  errorResponse
// @Router       /categories/{id}/products [get]
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	categoryID, err := strconv.Atoi(c.Param("id"))
	if err != nil || categoryID <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category id")
	}

	filter, err := pageFilter(c)
	if err != nil {
		return err
	}
	filter.CategoryID = categoryID

	products, err := h.catalog.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get returns a single product.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	p, err := h.catalog.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create adds a product to the catalog.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.CreateProductDTO  true  "Product"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var dto domain.CreateProductDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}

	p, err := h.catalog.Create(c.Request().Context(), dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, p)
}

// Update changes the fields present in the body.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                   true  "Product ID"
// @Param        body  body      domain.UpdateProductDTO  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	var dto domain.UpdateProductDTO
	if err := bindAndValidate(c, &dto); err != nil {
		return err
	}

	p, err := h.catalog.Update(c.Request().Context(), c.Param("id"), dto)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Delete removes a product and acknowledges with true.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product ID"
// @Success      200  {boolean} bool
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.catalog.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, true)
}

func pageFilter(c echo.Context) (ports.ListProductsFilter, error) {
	var (
		f     ports.ListProductsFilter
		limit int
	)
	err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &f.Offset).
		BindError()
	if err != nil {
		return f, echo.NewHTTPError(http.StatusBadRequest, "limit and offset must be integers")
	}
	if c.QueryParam("limit") != "" {
		f.Limit = &limit
	}
	return f, nil
}
