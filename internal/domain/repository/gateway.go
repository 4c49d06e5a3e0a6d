package repository

import (
	"context"

	"github.com/jhoicas/mebel-store/internal/domain/entity"
)

// CollectionGateway puerto hacia el backend remoto para una colección (DIP).
// Las implementaciones viven en infrastructure y traducen entre el esquema de
// cable (snake_case, arrays en JSON) y las entidades de dominio.
// Nunca mutan los valores recibidos; cualquier error significa "remoto no disponible".
type CollectionGateway[T any, P any] interface {
	// FetchAll lee la colección completa ordenada por su campo natural.
	FetchAll(ctx context.Context) ([]T, error)
	// Create inserta item y devuelve la fila con el ID asignado por el servidor.
	// Los IDs enteros provisionales no se envían; los de cadena (uuid) sí.
	Create(ctx context.Context, item T) (*T, error)
	// Update escribe solo los campos presentes en patch.
	Update(ctx context.Context, id entity.ID, patch P) error
	// Delete elimina una fila por ID.
	Delete(ctx context.Context, id entity.ID) error
}

// SlideGateway puerto remoto para los slides de portada.
type SlideGateway = CollectionGateway[entity.Slide, entity.SlidePatch]

// ShopGateway puerto remoto para las tiendas.
type ShopGateway = CollectionGateway[entity.Shop, entity.ShopPatch]

// ContactMessageGateway puerto remoto para las solicitudes del formulario de contacto.
type ContactMessageGateway = CollectionGateway[entity.ContactMessage, entity.ContactMessagePatch]
