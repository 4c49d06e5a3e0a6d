package repository

import (
	"context"

	"github.com/jhoicas/mebel-store/internal/domain/entity"
)

// ContactInfoGateway puerto remoto para el registro único de contacto (id = 1).
type ContactInfoGateway interface {
	// Fetch devuelve el registro remoto o nil si aún no existe.
	Fetch(ctx context.Context) (*entity.ContactInfo, error)
	// Upsert escribe el registro completo y devuelve lo persistido.
	Upsert(ctx context.Context, info entity.ContactInfo) (*entity.ContactInfo, error)
}
