package repository

import (
	"context"

	"github.com/jhoicas/mebel-store/internal/domain/entity"
)

// CategoryGateway puerto remoto para categorías (orden natural: "order").
type CategoryGateway = CollectionGateway[entity.Category, entity.CategoryPatch]

// CategoryNameLookup resuelve el título de una categoría por ID.
// Lo usan los gateways de productos para completar el nombre desnormalizado.
type CategoryNameLookup interface {
	CategoryTitle(ctx context.Context, id entity.ID) (string, error)
}
