package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/domain"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
	"github.com/jhoicas/mebel-store/internal/domain/repository"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

var _ SyncedCollection = (*SlideStore)(nil)

// SlideStore banners de la portada, ordenados por Order.
type SlideStore struct {
	managed[entity.Slide, entity.SlidePatch]
}

func NewSlideStore(ctx context.Context, gw repository.SlideGateway, opts Options, defaults func() []entity.Slide, log *logger.Logger) *SlideStore {
	b := syncstore.Binding[entity.Slide, entity.SlidePatch]{
		Kind:     "slides",
		CacheKey: "slides",
		ID:       func(s entity.Slide) entity.ID { return s.ID },
		WithID:   func(s entity.Slide, id entity.ID) entity.Slide { s.ID = id; return s },
		Apply:    func(p entity.SlidePatch, s entity.Slide) entity.Slide { return p.Apply(s) },
		NextID:   syncstore.SequentialID(func(s entity.Slide) entity.ID { return s.ID }),
		Defaults: defaults,
	}
	return &SlideStore{managed[entity.Slide, entity.SlidePatch]{engine: syncstore.New(ctx, b, gw, opts.Cache, opts.Mode, log)}}
}

// GetAll slides ordenados por Order (estable).
func (s *SlideStore) GetAll() []entity.Slide {
	all := s.engine.GetAll()
	sort.SliceStable(all, func(i, j int) bool { return all[i].Order < all[j].Order })
	return all
}

// Active slides visibles en la portada.
func (s *SlideStore) Active() []entity.Slide {
	var out []entity.Slide
	for _, sl := range s.GetAll() {
		if sl.IsActive {
			out = append(out, sl)
		}
	}
	return out
}

// Add exige imagen.
func (s *SlideStore) Add(ctx context.Context, sl entity.Slide) (entity.Slide, error) {
	sl.Image = strings.TrimSpace(sl.Image)
	if sl.Image == "" {
		return entity.Slide{}, domain.NewValidationError("image", "la imagen es obligatoria")
	}
	return s.engine.Add(ctx, sl)
}

func (s *SlideStore) Update(ctx context.Context, id entity.ID, p entity.SlidePatch) (entity.Slide, error) {
	if p.Image != nil && strings.TrimSpace(*p.Image) == "" {
		return entity.Slide{}, domain.NewValidationError("image", "la imagen es obligatoria")
	}
	return s.engine.Update(ctx, id, p)
}

func (s *SlideStore) Delete(ctx context.Context, id entity.ID) bool {
	return s.engine.Delete(ctx, id)
}
