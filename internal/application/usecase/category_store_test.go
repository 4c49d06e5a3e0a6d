package usecase_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/application/usecase"
	"github.com/jhoicas/mebel-store/internal/domain"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
	"github.com/jhoicas/mebel-store/internal/infrastructure/mirror"
	"github.com/jhoicas/mebel-store/internal/infrastructure/seed"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

var ctx = context.Background()

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

func newOptions(mode syncstore.Mode) usecase.Options {
	return usecase.Options{
		Cache: mirror.New(mirror.NewMemoryStorage(0), "test:", logger.Nop()),
		Mode:  mode,
	}
}

func localCategories(t *testing.T) *usecase.CategoryStore {
	t.Helper()
	return usecase.NewCategoryStore(ctx, nil, newOptions(syncstore.Local), seed.Categories, logger.Nop())
}

// Remoto vacío y espejo vacío: se cargan las tres categorías por defecto y
// la nueva categoría recibe id 4, slug generado y orden 0.
func TestCategoryStore_EscenarioSemillaYVannaya(t *testing.T) {
	gw := &fakeGateway[entity.Category, entity.CategoryPatch]{failCreate: true}
	s := usecase.NewCategoryStore(ctx, gw, newOptions(syncstore.Remote), seed.Categories, logger.Nop())

	all := s.GetAll()
	require.Len(t, all, 3)
	for i, c := range all {
		assert.Equal(t, []string{"Гостиная", "Спальня", "Кухня"}[i], c.Title)
		assert.Equal(t, i+1, c.Order)
		assert.True(t, c.IsActive)
	}

	created, err := s.Add(ctx, entity.Category{Title: "Ванная"})
	require.NoError(t, err)
	assert.True(t, created.ID.Equal(entity.IntID(4)))
	assert.Equal(t, "vannaya", created.Slug)
	assert.Equal(t, 0, created.Order)
	assert.Len(t, s.GetAll(), 4)
	assert.Equal(t, syncstore.Local, s.Mode())
}

func TestCategoryStore_SlugSiempreValidoYUnico(t *testing.T) {
	s := localCategories(t)

	for _, title := range []string{"Детская комната", "Офис — кабинет", "Prihozhaya", "Café Ñandú"} {
		c, err := s.Add(ctx, entity.Category{Title: title})
		require.NoError(t, err, title)
		assert.Regexp(t, slugPattern, c.Slug)
	}
	seen := map[string]bool{}
	for _, c := range s.GetAll() {
		assert.False(t, seen[c.Slug], "slug repetido %s", c.Slug)
		seen[c.Slug] = true
	}
}

func TestCategoryStore_SlugRepetidoSeRechazaSinCambios(t *testing.T) {
	s := localCategories(t)
	before := s.GetAll()

	_, err := s.Add(ctx, entity.Category{Title: "Otra sala", Slug: "gostinaya"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
	assert.True(t, domain.IsValidation(err))

	_, err = s.Add(ctx, entity.Category{Title: "X", Slug: "Mal--slug"})
	assert.ErrorIs(t, err, domain.ErrInvalidSlug)

	// Una categoría inactiva también reserva su slug.
	inactive := false
	_, err = s.Update(ctx, entity.IntID(3), entity.CategoryPatch{IsActive: &inactive})
	require.NoError(t, err)
	_, err = s.Add(ctx, entity.Category{Title: "Кухня"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	slug := "spalnya"
	_, err = s.Update(ctx, entity.IntID(1), entity.CategoryPatch{Slug: &slug})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	after := s.GetAll()
	assert.Len(t, after, len(before))
	assert.Equal(t, "gostinaya", after[0].Slug)
}

func TestCategoryStore_UpdateConservaSuPropioSlug(t *testing.T) {
	s := localCategories(t)
	title := "Гостиная комната"
	slug := "gostinaya"
	c, err := s.Update(ctx, entity.StringID("1"), entity.CategoryPatch{Title: &title, Slug: &slug})
	require.NoError(t, err)
	assert.Equal(t, "gostinaya", c.Slug)

	empty := ""
	c, err = s.Update(ctx, entity.IntID(1), entity.CategoryPatch{Slug: &empty})
	require.NoError(t, err)
	assert.Equal(t, "gostinaya-komnata", c.Slug, "slug vacío se regenera desde el título")

	_, err = s.Update(ctx, entity.IntID(99), entity.CategoryPatch{Title: &title})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryStore_BySlugYActive(t *testing.T) {
	s := localCategories(t)
	c, ok := s.BySlug(" KUKHNYA ")
	require.True(t, ok)
	assert.Equal(t, "Кухня", c.Title)

	inactive := false
	_, err := s.Update(ctx, c.ID, entity.CategoryPatch{IsActive: &inactive})
	require.NoError(t, err)
	assert.Len(t, s.Active(), 2)
}

func TestCategoryStore_DeleteProhibidoConProductos(t *testing.T) {
	cats := localCategories(t)
	products := usecase.NewProductStore(ctx, nil, cats, nil, newOptions(syncstore.Local), nil, logger.Nop())

	_, err := products.Add(ctx, entity.Product{Name: "Диван", Price: decimal.NewFromInt(100), CategoryID: entity.IntID(1)})
	require.NoError(t, err)

	ok, err := cats.Delete(ctx, entity.IntID(1))
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.False(t, ok)
	assert.Len(t, cats.GetAll(), 3)

	ok, err = cats.Delete(ctx, entity.IntID(2))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cats.Delete(ctx, entity.IntID(2))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCategoryStore_RenombrarActualizaProductos(t *testing.T) {
	cats := localCategories(t)
	products := usecase.NewProductStore(ctx, nil, cats, nil, newOptions(syncstore.Local), nil, logger.Nop())
	p, err := products.Add(ctx, entity.Product{Name: "Кровать", CategoryID: entity.IntID(2)})
	require.NoError(t, err)
	assert.Equal(t, "Спальня", p.CategoryName)

	title := "Спальни"
	_, err = cats.Update(ctx, entity.IntID(2), entity.CategoryPatch{Title: &title})
	require.NoError(t, err)

	got, ok := products.Find(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Спальни", got.CategoryName)
}
