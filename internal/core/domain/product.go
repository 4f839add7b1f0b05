package domain

import (
	"errors"
	"math"
)

// TaxRate is the VAT rate applied client-side to every listed product.
const TaxRate = 0.19

var (
	ErrProductNotFound = errors.New("El producto no existe")
	ErrServerConflict  = errors.New("Algo esta fallando en el server")
	ErrNotAllowed      = errors.New("No estas permitido")

	ErrInvalidPagination = errors.New("limit and offset must not be negative")
)

// Product is a catalog item as returned by the backend. Taxes is derived on
// read and never sent back.
type Product struct {
	ID          string   `json:"id" bson:"_id"`
	Title       string   `json:"title" bson:"title"`
	Price       float64  `json:"price" bson:"price"`
	Description string   `json:"description" bson:"description"`
	Images      []string `json:"images" bson:"images"`
	CategoryID  int      `json:"categoryId" bson:"category_id"`
	Taxes       float64  `json:"taxes,omitempty" bson:"-"`
}

// CreateProductDTO is the exact body of a create request.
type CreateProductDTO struct {
	Title       string   `json:"title" validate:"required"`
	Price       float64  `json:"price" validate:"gte=0"`
	Images      []string `json:"images" validate:"required,min=1,dive,required"`
	Description string   `json:"description" validate:"required"`
	CategoryID  int      `json:"categoryId" validate:"required,gt=0"`
}

// UpdateProductDTO is a partial update; only non-nil fields are sent.
type UpdateProductDTO struct {
	Title       *string   `json:"title,omitempty" validate:"omitempty,min=1"`
	Price       *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	Images      *[]string `json:"images,omitempty" validate:"omitempty,dive,required"`
	Description *string   `json:"description,omitempty" validate:"omitempty,min=1"`
	CategoryID  *int      `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
}

// ComputeTaxes returns the rounded tax for price, zero for non-positive prices.
func ComputeTaxes(price float64) float64 {
	if price <= 0 {
		return 0
	}
	return math.Round(price * TaxRate)
}

// WithTaxes returns a copy of p carrying its derived taxes.
func (p Product) WithTaxes() Product {
	p.Taxes = ComputeTaxes(p.Price)
	return p
}

// Apply merges the set fields of dto into p.
func (dto UpdateProductDTO) Apply(p *Product) {
	if dto.Title != nil {
		p.Title = *dto.Title
	}
	if dto.Price != nil {
		p.Price = *dto.Price
	}
	if dto.Images != nil {
		p.Images = append([]string{}, *dto.Images...)
	}
	if dto.Description != nil {
		p.Description = *dto.Description
	}
	if dto.CategoryID != nil {
		p.CategoryID = *dto.CategoryID
	}
}
