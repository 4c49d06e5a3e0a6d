package entity

import "time"

// Category representa una categoría del catálogo (sala, dormitorio, cocina...).
// Slug es único entre todas las categorías, activas e inactivas.
type Category struct {
	ID          ID        `json:"id"`
	Title       string    `json:"title"`
	Image       string    `json:"image"`
	Slug        string    `json:"slug"`
	Description string    `json:"description,omitempty"`
	Order       int       `json:"order"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CategoryPatch actualización parcial: nil = campo no enviado.
type CategoryPatch struct {
	Title       *string
	Image       *string
	Slug        *string
	Description *string
	Order       *int
	IsActive    *bool
}

// Apply devuelve una copia de c con los campos del patch aplicados.
func (p CategoryPatch) Apply(c Category) Category {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Order != nil {
		c.Order = *p.Order
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
	return c
}
