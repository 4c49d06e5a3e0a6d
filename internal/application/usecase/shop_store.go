package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/domain"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
	"github.com/jhoicas/mebel-store/internal/domain/repository"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

var _ SyncedCollection = (*ShopStore)(nil)

// ShopStore puntos de venta. Los IDs locales son UUID.
type ShopStore struct {
	managed[entity.Shop, entity.ShopPatch]
}

func NewShopStore(ctx context.Context, gw repository.ShopGateway, opts Options, defaults func() []entity.Shop, log *logger.Logger) *ShopStore {
	b := syncstore.Binding[entity.Shop, entity.ShopPatch]{
		Kind:     "shops",
		CacheKey: "shops",
		ID:       func(s entity.Shop) entity.ID { return s.ID },
		WithID:   func(s entity.Shop, id entity.ID) entity.Shop { s.ID = id; return s },
		Apply:    func(p entity.ShopPatch, s entity.Shop) entity.Shop { return p.Apply(s) },
		NextID:   func([]entity.Shop) entity.ID { return entity.StringID(uuid.NewString()) },
		Defaults: defaults,
		Clone:    cloneShop,
	}
	return &ShopStore{managed[entity.Shop, entity.ShopPatch]{engine: syncstore.New(ctx, b, gw, opts.Cache, opts.Mode, log)}}
}

func (s *ShopStore) GetAll() []entity.Shop {
	return s.engine.GetAll()
}

// Add exige título y dirección.
func (s *ShopStore) Add(ctx context.Context, shop entity.Shop) (entity.Shop, error) {
	shop.Title = strings.TrimSpace(shop.Title)
	shop.Address = strings.TrimSpace(shop.Address)
	if shop.Title == "" {
		return entity.Shop{}, domain.NewValidationError("title", "el nombre de la tienda es obligatorio")
	}
	if shop.Address == "" {
		return entity.Shop{}, domain.NewValidationError("address", "la dirección es obligatoria")
	}
	if err := validateCoordinates(shop.Coordinates); err != nil {
		return entity.Shop{}, err
	}
	return s.engine.Add(ctx, shop)
}

func (s *ShopStore) Update(ctx context.Context, id entity.ID, p entity.ShopPatch) (entity.Shop, error) {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return entity.Shop{}, domain.NewValidationError("title", "el nombre de la tienda es obligatorio")
	}
	if p.Address != nil && strings.TrimSpace(*p.Address) == "" {
		return entity.Shop{}, domain.NewValidationError("address", "la dirección es obligatoria")
	}
	if p.Coordinates != nil {
		if err := validateCoordinates(*p.Coordinates); err != nil {
			return entity.Shop{}, err
		}
	}
	return s.engine.Update(ctx, id, p)
}

func (s *ShopStore) Delete(ctx context.Context, id entity.ID) bool {
	return s.engine.Delete(ctx, id)
}

func validateCoordinates(c *entity.Coordinates) error {
	if c == nil {
		return nil
	}
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return domain.NewValidationError("coordinates", "coordenadas fuera de rango")
	}
	return nil
}

func cloneShop(s entity.Shop) entity.Shop {
	if s.Coordinates != nil {
		c := *s.Coordinates
		s.Coordinates = &c
	}
	return s
}
