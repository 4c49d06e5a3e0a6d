package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/domain"
	"github.com/jhoicas/mebel-store/internal/domain/catalog"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
	"github.com/jhoicas/mebel-store/internal/domain/repository"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

var (
	_ SyncedCollection   = (*ProductStore)(nil)
	_ CategoryReferences = (*ProductStore)(nil)
)

// ProductStore productos del catálogo. Normaliza imágenes y mantiene el
// nombre de categoría desnormalizado en cada escritura.
type ProductStore struct {
	managed[entity.Product, entity.ProductPatch]
	categories   *CategoryStore
	trustedHosts []string
	log          *logger.Logger
}

// NewProductStore construye el store; categories resuelve nombres y existencia.
func NewProductStore(ctx context.Context, gw repository.ProductGateway, categories *CategoryStore, trustedHosts []string, opts Options, defaults func() []entity.Product, log *logger.Logger) *ProductStore {
	if log == nil {
		log = logger.Nop()
	}
	b := syncstore.Binding[entity.Product, entity.ProductPatch]{
		Kind:     "products",
		CacheKey: "products",
		ID:       func(p entity.Product) entity.ID { return p.ID },
		WithID:   func(p entity.Product, id entity.ID) entity.Product { p.ID = id; return p },
		Apply: func(pp entity.ProductPatch, p entity.Product) entity.Product {
			p = pp.Apply(p)
			p.UpdatedAt = time.Now().UTC()
			return p
		},
		NextID:   syncstore.SequentialID(func(p entity.Product) entity.ID { return p.ID }),
		Defaults: defaults,
		Clone:    entity.Product.Clone,
	}
	s := &ProductStore{
		managed:      managed[entity.Product, entity.ProductPatch]{engine: syncstore.New(ctx, b, gw, opts.Cache, opts.Mode, log)},
		categories:   categories,
		trustedHosts: trustedHosts,
		log:          log.Named("products"),
	}
	if categories != nil {
		categories.AttachProducts(s)
	}
	return s
}

// GetAll todos los productos.
func (s *ProductStore) GetAll() []entity.Product {
	return s.engine.GetAll()
}

// ByCategory productos de la categoría id.
func (s *ProductStore) ByCategory(id entity.ID) []entity.Product {
	var out []entity.Product
	for _, p := range s.engine.GetAll() {
		if p.CategoryID.Equal(id) {
			out = append(out, p)
		}
	}
	return out
}

// CountByCategory número de productos que referencian la categoría id.
func (s *ProductStore) CountByCategory(id entity.ID) int {
	return len(s.ByCategory(id))
}

// RenameCategory actualiza el nombre desnormalizado tras renombrar una categoría.
func (s *ProductStore) RenameCategory(ctx context.Context, id entity.ID, title string) {
	for _, p := range s.ByCategory(id) {
		if p.CategoryName == title {
			continue
		}
		name := title
		if _, err := s.engine.Update(ctx, p.ID, entity.ProductPatch{CategoryName: &name}); err != nil {
			s.log.Warn().Err(err).Str("id", p.ID.String()).Msg("no se pudo renombrar la categoría del producto")
		}
	}
}

// Add valida y agrega un producto.
func (s *ProductStore) Add(ctx context.Context, p entity.Product) (entity.Product, error) {
	p = p.Clone()
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entity.Product{}, domain.NewValidationError("name", "el nombre es obligatorio")
	}
	if p.Price.IsNegative() {
		return entity.Product{}, domain.NewValidationError("price", "el precio no puede ser negativo")
	}
	if p.Stock < 0 {
		return entity.Product{}, domain.NewValidationError("stock", "el stock no puede ser negativo")
	}
	name, err := s.categoryName(p.CategoryID)
	if err != nil {
		return entity.Product{}, err
	}
	p.CategoryName = name
	p.Images = catalog.NormalizeImages(p.Images, s.trustedHosts)
	p.Features = cleanFeatures(p.Features)
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return s.engine.Add(ctx, p)
}

// Update valida los campos presentes; imágenes y categoría se normalizan como en Add.
func (s *ProductStore) Update(ctx context.Context, id entity.ID, p entity.ProductPatch) (entity.Product, error) {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			return entity.Product{}, domain.NewValidationError("name", "el nombre es obligatorio")
		}
		p.Name = &name
	}
	if p.Price != nil && p.Price.IsNegative() {
		return entity.Product{}, domain.NewValidationError("price", "el precio no puede ser negativo")
	}
	if p.Stock != nil && *p.Stock < 0 {
		return entity.Product{}, domain.NewValidationError("stock", "el stock no puede ser negativo")
	}
	if p.CategoryID != nil {
		name, err := s.categoryName(*p.CategoryID)
		if err != nil {
			return entity.Product{}, err
		}
		p.CategoryName = &name
	}
	if p.Images != nil {
		images := catalog.NormalizeImages(*p.Images, s.trustedHosts)
		p.Images = &images
	}
	if p.Features != nil {
		features := cleanFeatures(*p.Features)
		p.Features = &features
	}
	return s.engine.Update(ctx, id, p)
}

// Delete elimina un producto; false si no existía.
func (s *ProductStore) Delete(ctx context.Context, id entity.ID) bool {
	return s.engine.Delete(ctx, id)
}

// categoryName exige que la categoría exista y devuelve su título.
func (s *ProductStore) categoryName(id entity.ID) (string, error) {
	if id.IsZero() {
		return "", domain.NewValidationError("categoryId", "la categoría es obligatoria")
	}
	if s.categories == nil {
		return "", nil
	}
	c, ok := s.categories.Find(id)
	if !ok {
		return "", domain.NewValidationError("categoryId", fmt.Sprintf("la categoría %s no existe", id))
	}
	return c.Title, nil
}

func cleanFeatures(in []string) []string {
	out := make([]string, 0, len(in))
	for _, f := range in {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
