package repository

import "github.com/jhoicas/mebel-store/internal/domain/entity"

// ProductGateway puerto remoto para productos.
// Create completa CategoryName consultando la tabla de categorías si viene vacío.
type ProductGateway = CollectionGateway[entity.Product, entity.ProductPatch]
