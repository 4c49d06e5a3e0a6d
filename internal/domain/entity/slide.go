package entity

// Slide banner de la portada, ordenado por Order.
type Slide struct {
	ID          ID     `json:"id"`
	Image       string `json:"image"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Order       int    `json:"order"`
	IsActive    bool   `json:"isActive"`
}

// SlidePatch actualización parcial de un slide.
type SlidePatch struct {
	Image       *string
	Title       *string
	Description *string
	Order       *int
	IsActive    *bool
}

// Apply devuelve una copia de s con los campos del patch aplicados.
func (p SlidePatch) Apply(s Slide) Slide {
	if p.Image != nil {
		s.Image = *p.Image
	}
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Order != nil {
		s.Order = *p.Order
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
	return s
}
