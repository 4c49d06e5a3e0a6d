package entity

// Coordinates ubicación geográfica de una tienda.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Shop representa un punto de venta físico.
type Shop struct {
	ID           ID           `json:"id"`
	Title        string       `json:"title"`
	Address      string       `json:"address"`
	Description  string       `json:"description"`
	Image        string       `json:"image"`
	Phone        string       `json:"phone,omitempty"`
	Email        string       `json:"email,omitempty"`
	WorkingHours string       `json:"workingHours,omitempty"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

// ShopPatch actualización parcial de una tienda.
type ShopPatch struct {
	Title        *string
	Address      *string
	Description  *string
	Image        *string
	Phone        *string
	Email        *string
	WorkingHours *string
	Coordinates  **Coordinates // *nil borra las coordenadas
}

// Apply devuelve una copia de s con los campos del patch aplicados.
func (p ShopPatch) Apply(s Shop) Shop {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Image != nil {
		s.Image = *p.Image
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.WorkingHours != nil {
		s.WorkingHours = *p.WorkingHours
	}
	if p.Coordinates != nil {
		if *p.Coordinates == nil {
			s.Coordinates = nil
		} else {
			c := **p.Coordinates
			s.Coordinates = &c
		}
	}
	return s
}
