package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mebel-store/internal/domain/entity"
)

// ListResponse lista completa de una colección (sin paginar: las colecciones son pequeñas).
type ListResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// NewList construye la respuesta; nil se serializa como [].
func NewList[T any](items []T) ListResponse[T] {
	if items == nil {
		items = []T{}
	}
	return ListResponse[T]{Items: items, Total: len(items)}
}

// CreateCategoryRequest entrada para crear una categoría. Slug vacío = generado desde el título.
type CreateCategoryRequest struct {
	Title       string `json:"title"`
	Image       string `json:"image"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

// ToEntity IsActive por defecto true.
func (r CreateCategoryRequest) ToEntity() entity.Category {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return entity.Category{
		Title:       r.Title,
		Image:       r.Image,
		Slug:        r.Slug,
		Description: r.Description,
		Order:       r.Order,
		IsActive:    active,
	}
}

// UpdateCategoryRequest actualización parcial de una categoría.
type UpdateCategoryRequest struct {
	Title       *string `json:"title"`
	Image       *string `json:"image"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (r UpdateCategoryRequest) ToPatch() entity.CategoryPatch {
	return entity.CategoryPatch{
		Title:       r.Title,
		Image:       r.Image,
		Slug:        r.Slug,
		Description: r.Description,
		Order:       r.Order,
		IsActive:    r.IsActive,
	}
}

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  entity.ID       `json:"categoryId" swaggertype:"integer"`
	Images      []string        `json:"images"`
	Stock       int             `json:"stock"`
	Features    []string        `json:"features"`
}

func (r CreateProductRequest) ToEntity() entity.Product {
	return entity.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		Images:      r.Images,
		Stock:       r.Stock,
		Features:    r.Features,
	}
}

// UpdateProductRequest actualización parcial; categoryName se recalcula en el servidor.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	CategoryID  *entity.ID       `json:"categoryId" swaggertype:"integer"`
	Images      *[]string        `json:"images"`
	Stock       *int             `json:"stock"`
	Features    *[]string        `json:"features"`
}

func (r UpdateProductRequest) ToPatch() entity.ProductPatch {
	return entity.ProductPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		CategoryID:  r.CategoryID,
		Images:      r.Images,
		Stock:       r.Stock,
		Features:    r.Features,
	}
}

// ShopRequest alta de tienda.
type ShopRequest struct {
	Title        string              `json:"title"`
	Address      string              `json:"address"`
	Description  string              `json:"description"`
	Image        string              `json:"image"`
	Phone        string              `json:"phone"`
	Email        string              `json:"email"`
	WorkingHours string              `json:"workingHours"`
	Coordinates  *entity.Coordinates `json:"coordinates"`
}

func (r ShopRequest) ToEntity() entity.Shop {
	return entity.Shop{
		Title:        r.Title,
		Address:      r.Address,
		Description:  r.Description,
		Image:        r.Image,
		Phone:        r.Phone,
		Email:        r.Email,
		WorkingHours: r.WorkingHours,
		Coordinates:  r.Coordinates,
	}
}

// UpdateShopRequest actualización parcial; clearCoordinates borra la ubicación.
type UpdateShopRequest struct {
	Title            *string             `json:"title"`
	Address          *string             `json:"address"`
	Description      *string             `json:"description"`
	Image            *string             `json:"image"`
	Phone            *string             `json:"phone"`
	Email            *string             `json:"email"`
	WorkingHours     *string             `json:"workingHours"`
	Coordinates      *entity.Coordinates `json:"coordinates"`
	ClearCoordinates bool                `json:"clearCoordinates"`
}

func (r UpdateShopRequest) ToPatch() entity.ShopPatch {
	p := entity.ShopPatch{
		Title:        r.Title,
		Address:      r.Address,
		Description:  r.Description,
		Image:        r.Image,
		Phone:        r.Phone,
		Email:        r.Email,
		WorkingHours: r.WorkingHours,
	}
	switch {
	case r.ClearCoordinates:
		var none *entity.Coordinates
		p.Coordinates = &none
	case r.Coordinates != nil:
		c := r.Coordinates
		p.Coordinates = &c
	}
	return p
}

// SlideRequest alta de slide. IsActive por defecto true.
type SlideRequest struct {
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Order       int    `json:"order"`
	IsActive    *bool  `json:"isActive"`
}

func (r SlideRequest) ToEntity() entity.Slide {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return entity.Slide{
		Image:       r.Image,
		Title:       r.Title,
		Description: r.Description,
		Order:       r.Order,
		IsActive:    active,
	}
}

type UpdateSlideRequest struct {
	Image       *string `json:"image"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}

func (r UpdateSlideRequest) ToPatch() entity.SlidePatch {
	return entity.SlidePatch{
		Image:       r.Image,
		Title:       r.Title,
		Description: r.Description,
		Order:       r.Order,
		IsActive:    r.IsActive,
	}
}

// UpdateContactInfoRequest social/about ausentes (o null) se conservan; [] los borra.
type UpdateContactInfoRequest struct {
	Phone        *string                `json:"phone"`
	Email        *string                `json:"email"`
	Address      *string                `json:"address"`
	WorkingHours *string                `json:"workingHours"`
	MapEmbed     *string                `json:"mapEmbed"`
	Social       *[]entity.SocialLink   `json:"social"`
	About        *[]entity.AboutSection `json:"about"`
}

func (r UpdateContactInfoRequest) ToPatch() entity.ContactInfoPatch {
	return entity.ContactInfoPatch{
		Phone:        r.Phone,
		Email:        r.Email,
		Address:      r.Address,
		WorkingHours: r.WorkingHours,
		MapEmbed:     r.MapEmbed,
		Social:       r.Social,
		About:        r.About,
	}
}

// ContactMessageRequest envío del formulario de contacto de la tienda.
type ContactMessageRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (r ContactMessageRequest) ToEntity() entity.ContactMessage {
	return entity.ContactMessage{Name: r.Name, Phone: r.Phone, Email: r.Email, Message: r.Message}
}

// UpdateContactMessageRequest solo el estado de procesamiento.
type UpdateContactMessageRequest struct {
	Processed bool `json:"processed"`
}
