package entity

import "time"

// ContactMessage solicitud enviada desde el formulario de contacto de la tienda.
type ContactMessage struct {
	ID        ID        `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message"`
	Processed bool      `json:"processed"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessagePatch solo el estado de procesamiento es editable.
type ContactMessagePatch struct {
	Processed *bool
}

// Apply devuelve una copia de m con los campos del patch aplicados.
func (p ContactMessagePatch) Apply(m ContactMessage) ContactMessage {
	if p.Processed != nil {
		m.Processed = *p.Processed
	}
	return m
}
