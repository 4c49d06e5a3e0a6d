package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un mueble del catálogo.
// CategoryName está desnormalizado: se sincroniza al escribir, no por restricción.
// Images nunca queda vacío (por defecto contiene el placeholder).
type Product struct {
	ID           ID              `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   ID              `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Images       []string        `json:"images"`
	Stock        int             `json:"stock"`
	Features     []string        `json:"features"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// ProductPatch actualización parcial de un producto.
type ProductPatch struct {
	Name         *string
	Description  *string
	Price        *decimal.Decimal
	CategoryID   *ID
	CategoryName *string
	Images       *[]string
	Stock        *int
	Features     *[]string
}

// Apply devuelve una copia de p con los campos del patch aplicados.
func (pp ProductPatch) Apply(p Product) Product {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Price != nil {
		p.Price = *pp.Price
	}
	if pp.CategoryID != nil {
		p.CategoryID = *pp.CategoryID
	}
	if pp.CategoryName != nil {
		p.CategoryName = *pp.CategoryName
	}
	if pp.Images != nil {
		p.Images = append([]string(nil), (*pp.Images)...)
	}
	if pp.Stock != nil {
		p.Stock = *pp.Stock
	}
	if pp.Features != nil {
		p.Features = append([]string(nil), (*pp.Features)...)
	}
	return p
}

// Clone copia profunda (los slices no se comparten).
func (p Product) Clone() Product {
	p.Images = append([]string(nil), p.Images...)
	p.Features = append([]string(nil), p.Features...)
	return p
}
