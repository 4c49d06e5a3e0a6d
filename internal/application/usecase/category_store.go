package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/domain"
	"github.com/jhoicas/mebel-store/internal/domain/catalog"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
	"github.com/jhoicas/mebel-store/internal/domain/repository"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

// CategoryReferences lo que CategoryStore necesita saber de los productos.
type CategoryReferences interface {
	CountByCategory(id entity.ID) int
	RenameCategory(ctx context.Context, id entity.ID, title string)
}

var _ SyncedCollection = (*CategoryStore)(nil)

// CategoryStore categorías del catálogo con reglas de slug.
type CategoryStore struct {
	managed[entity.Category, entity.CategoryPatch]
	refs CategoryReferences
}

// NewCategoryStore construye el store y carga la colección inicial.
// gw nil = sin backend remoto.
func NewCategoryStore(ctx context.Context, gw repository.CategoryGateway, opts Options, defaults func() []entity.Category, log *logger.Logger) *CategoryStore {
	b := syncstore.Binding[entity.Category, entity.CategoryPatch]{
		Kind:     "categories",
		CacheKey: "categories",
		ID:       func(c entity.Category) entity.ID { return c.ID },
		WithID:   func(c entity.Category, id entity.ID) entity.Category { c.ID = id; return c },
		Apply:    func(p entity.CategoryPatch, c entity.Category) entity.Category { return p.Apply(c) },
		NextID:   syncstore.SequentialID(func(c entity.Category) entity.ID { return c.ID }),
		Defaults: defaults,
	}
	return &CategoryStore{managed: managed[entity.Category, entity.CategoryPatch]{
		engine: syncstore.New(ctx, b, gw, opts.Cache, opts.Mode, log),
	}}
}

// AttachProducts conecta el store de productos (referencias y renombrado).
func (s *CategoryStore) AttachProducts(refs CategoryReferences) {
	s.refs = refs
}

// GetAll categorías ordenadas por Order (estable).
func (s *CategoryStore) GetAll() []entity.Category {
	all := s.engine.GetAll()
	sort.SliceStable(all, func(i, j int) bool { return all[i].Order < all[j].Order })
	return all
}

// Active solo las categorías activas, en orden.
func (s *CategoryStore) Active() []entity.Category {
	var out []entity.Category
	for _, c := range s.GetAll() {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

// BySlug busca una categoría por slug.
func (s *CategoryStore) BySlug(slug string) (entity.Category, bool) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	for _, c := range s.engine.GetAll() {
		if c.Slug == slug {
			return c, true
		}
	}
	return entity.Category{}, false
}

// CategoryTitle título de la categoría id ("" si no existe).
func (s *CategoryStore) CategoryTitle(ctx context.Context, id entity.ID) (string, error) {
	c, ok := s.Find(id)
	if !ok {
		return "", nil
	}
	return c.Title, nil
}

// Add valida título y slug (generado desde el título si viene vacío) y agrega la categoría.
func (s *CategoryStore) Add(ctx context.Context, c entity.Category) (entity.Category, error) {
	c.Title = strings.TrimSpace(c.Title)
	if c.Title == "" {
		return entity.Category{}, domain.NewValidationError("title", "el título es obligatorio")
	}
	c.Slug = resolveSlug(c.Slug, c.Title)
	if err := catalog.CheckSlug(s.engine.GetAll(), c.Slug, entity.ID{}); err != nil {
		return entity.Category{}, err
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return s.engine.Add(ctx, c)
}

// Update aplica el patch tras validar el slug resultante; un slug vacío se regenera desde el título.
func (s *CategoryStore) Update(ctx context.Context, id entity.ID, p entity.CategoryPatch) (entity.Category, error) {
	current, ok := s.Find(id)
	if !ok {
		return entity.Category{}, fmt.Errorf("categoría %s: %w", id, domain.ErrNotFound)
	}
	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return entity.Category{}, domain.NewValidationError("title", "el título es obligatorio")
		}
		p.Title = &title
	}
	merged := p.Apply(current)
	if p.Slug != nil {
		slug := resolveSlug(*p.Slug, merged.Title)
		p.Slug = &slug
		merged.Slug = slug
	}
	if err := catalog.CheckSlug(s.engine.GetAll(), merged.Slug, current.ID); err != nil {
		return entity.Category{}, err
	}

	updated, err := s.engine.Update(ctx, current.ID, p)
	if err != nil {
		return entity.Category{}, err
	}
	if p.Title != nil && *p.Title != current.Title && s.refs != nil {
		s.refs.RenameCategory(ctx, updated.ID, updated.Title)
	}
	return updated, nil
}

// Delete elimina la categoría. Está prohibido mientras haya productos que la referencian.
func (s *CategoryStore) Delete(ctx context.Context, id entity.ID) (bool, error) {
	if s.refs != nil {
		if n := s.refs.CountByCategory(id); n > 0 {
			return false, fmt.Errorf("categoría %s tiene %d productos: %w", id, n, domain.ErrConflict)
		}
	}
	return s.engine.Delete(ctx, id), nil
}

func resolveSlug(slug, title string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return catalog.Slugify(title)
	}
	return slug
}
