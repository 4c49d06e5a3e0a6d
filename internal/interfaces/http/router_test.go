package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mebel-store/internal/application/dto"
	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/application/usecase"
	"github.com/jhoicas/mebel-store/internal/domain"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
	apphttp "github.com/jhoicas/mebel-store/internal/interfaces/http"
	"github.com/jhoicas/mebel-store/internal/infrastructure/mirror"
	"github.com/jhoicas/mebel-store/internal/infrastructure/seed"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeStorage StorageManager en memoria que registra los cambios de modo.
type fakeStorage struct {
	preferred syncstore.Mode
	cols      []usecase.SyncedCollection
	switchErr error
	switched  []syncstore.Mode
	cleared   int
}

func (f *fakeStorage) Preferred() syncstore.Mode                { return f.preferred }
func (f *fakeStorage) Backend() string                          { return "none" }
func (f *fakeStorage) Collections() []usecase.SyncedCollection { return f.cols }
func (f *fakeStorage) Reload(context.Context) error             { return nil }
func (f *fakeStorage) ClearCache()                              { f.cleared++ }

func (f *fakeStorage) SwitchMode(_ context.Context, mode syncstore.Mode) error {
	f.switched = append(f.switched, mode)
	if f.switchErr != nil {
		return f.switchErr
	}
	f.preferred = mode
	return nil
}

// buildTestApp aplicación Fiber con todos los stores en modo local sobre los datos por defecto.
func buildTestApp(t *testing.T) (*fiber.App, *fakeStorage) {
	t.Helper()
	ctx := context.Background()
	opts := usecase.Options{
		Cache: mirror.New(mirror.NewMemoryStorage(0), "test:", logger.Nop()),
		Mode:  syncstore.Local,
	}
	categories := usecase.NewCategoryStore(ctx, nil, opts, seed.Categories, logger.Nop())
	products := usecase.NewProductStore(ctx, nil, categories, nil, opts, seed.Products, logger.Nop())
	shops := usecase.NewShopStore(ctx, nil, opts, seed.Shops, logger.Nop())
	slides := usecase.NewSlideStore(ctx, nil, opts, seed.Slides, logger.Nop())
	info := usecase.NewContactInfoStore(ctx, nil, opts, seed.ContactInfo, logger.Nop())
	messages := usecase.NewContactMessageStore(ctx, nil, opts, logger.Nop())

	storage := &fakeStorage{
		preferred: syncstore.Local,
		cols:      []usecase.SyncedCollection{categories, products, shops, slides, info, messages},
	}
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Categories:      categories,
		Products:        products,
		Shops:           shops,
		Slides:          slides,
		ContactInfo:     info,
		ContactMessages: messages,
		Storage:         storage,
	})
	return app, storage
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tienda
// ──────────────────────────────────────────────────────────────────────────────

func TestCategories_ListaYSlug(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/api/categories", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.ListResponse[entity.Category]](t, raw)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, "Гостиная", list.Items[0].Title)

	resp, raw = do(t, app, http.MethodGet, "/api/categories/spalnya", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Спальня", decode[entity.Category](t, raw).Title)

	resp, raw = do(t, app, http.MethodGet, "/api/categories/no-existe", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, raw).Code)
}

func TestProducts_FiltroPorCategoriaYDetalle(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/api/products?category_id=2", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.ListResponse[entity.Product]](t, raw)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Спальня", list.Items[0].CategoryName)

	resp, raw = do(t, app, http.MethodGet, "/api/products/1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	p := decode[entity.Product](t, raw)
	assert.True(t, p.ID.Equal(entity.IntID(1)))
	assert.NotEmpty(t, p.Images)

	resp, _ = do(t, app, http.MethodGet, "/api/products/999", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestContactMessages_Envio(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, raw := do(t, app, http.MethodPost, "/api/contact-messages", `{"name":"Ирина","message":"Нужен диван"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, raw).Code)

	resp, raw = do(t, app, http.MethodPost, "/api/contact-messages", `{"name":"Ирина","phone":"+79990000000","message":"Нужен диван"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	m := decode[entity.ContactMessage](t, raw)
	assert.False(t, m.ID.IsZero())
	assert.False(t, m.Processed)

	resp, raw = do(t, app, http.MethodGet, "/api/admin/contact-messages?pending=true", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[dto.ListResponse[entity.ContactMessage]](t, raw).Total)

	resp, raw = do(t, app, http.MethodPatch, "/api/admin/contact-messages/"+m.ID.String(), `{"processed":true}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.True(t, decode[entity.ContactMessage](t, raw).Processed)

	resp, _ = do(t, app, http.MethodDelete, "/api/admin/contact-messages/"+m.ID.String(), "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Administración
// ──────────────────────────────────────────────────────────────────────────────

func TestAdminCategories_CrearDuplicadoYValidacion(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, raw := do(t, app, http.MethodPost, "/api/admin/categories", `{"title":"Ванная"}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[entity.Category](t, raw)
	assert.Equal(t, "vannaya", created.Slug)
	assert.True(t, created.IsActive)
	assert.True(t, created.ID.Equal(entity.IntID(4)))

	resp, raw = do(t, app, http.MethodPost, "/api/admin/categories", `{"title":"Ещё ванная","slug":"vannaya"}`)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", decode[dto.ErrorResponse](t, raw).Code)

	resp, raw = do(t, app, http.MethodPost, "/api/admin/categories", `{"title":"X","slug":"Bad Slug"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, raw).Code)

	resp, raw = do(t, app, http.MethodPost, "/api/admin/categories", `{"title":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decode[dto.ErrorResponse](t, raw).Code)
}

func TestAdminCategories_BorrarConProductosEsConflicto(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, raw := do(t, app, http.MethodDelete, "/api/admin/categories/1", "")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", decode[dto.ErrorResponse](t, raw).Code)

	resp, _ = do(t, app, http.MethodDelete, "/api/admin/products/1", "")
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp, _ = do(t, app, http.MethodDelete, "/api/admin/categories/1", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp, _ = do(t, app, http.MethodDelete, "/api/admin/categories/1", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminCategories_RenombrarActualizaProductos(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, _ := do(t, app, http.MethodPut, "/api/admin/categories/3", `{"title":"Кухни"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, raw := do(t, app, http.MethodGet, "/api/products/3", "")
	assert.Equal(t, "Кухни", decode[entity.Product](t, raw).CategoryName)
}

func TestAdminProducts_CrearConCategoriaInexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, raw := do(t, app, http.MethodPost, "/api/admin/products", `{"name":"Шкаф","price":"10000","categoryId":42}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, raw).Code)

	resp, raw = do(t, app, http.MethodPost, "/api/admin/products", `{"name":"Шкаф","price":"10000","categoryId":2,"features":["Зеркало",""]}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	p := decode[entity.Product](t, raw)
	assert.Equal(t, "Спальня", p.CategoryName)
	assert.Equal(t, []string{"Зеркало"}, p.Features)
	assert.NotEmpty(t, p.Images)
}

func TestAdminContactInfo_ConservaSocialAusente(t *testing.T) {
	app, _ := buildTestApp(t)

	_, raw := do(t, app, http.MethodGet, "/api/contact-info", "")
	before := decode[entity.ContactInfo](t, raw)
	require.NotEmpty(t, before.Social)

	resp, raw := do(t, app, http.MethodPut, "/api/admin/contact-info", `{"phone":"+7 (342) 111-11-11"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	after := decode[entity.ContactInfo](t, raw)
	assert.Equal(t, "+7 (342) 111-11-11", after.Phone)
	assert.Equal(t, before.Social, after.Social)

	resp, raw = do(t, app, http.MethodPut, "/api/admin/contact-info", `{"social":[]}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[entity.ContactInfo](t, raw).Social)
}

func TestAdminShops_CRUD(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, raw := do(t, app, http.MethodPost, "/api/admin/shops", `{"title":"Салон на Мира","address":"ул. Мира, 1","coordinates":{"lat":58.0,"lng":56.2}}`)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	shop := decode[entity.Shop](t, raw)
	require.False(t, shop.ID.IsZero())

	resp, raw = do(t, app, http.MethodPut, "/api/admin/shops/"+shop.ID.String(), `{"clearCoordinates":true}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Nil(t, decode[entity.Shop](t, raw).Coordinates)

	resp, _ = do(t, app, http.MethodPost, "/api/admin/shops", `{"title":"Без адреса"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = do(t, app, http.MethodDelete, "/api/admin/shops/"+shop.ID.String(), "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestAdminSlides_InactivoNoEsPublico(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, _ := do(t, app, http.MethodPut, "/api/admin/slides/1", `{"isActive":false}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	_, raw := do(t, app, http.MethodGet, "/api/slides", "")
	assert.Equal(t, 1, decode[dto.ListResponse[entity.Slide]](t, raw).Total)
	_, raw = do(t, app, http.MethodGet, "/api/admin/slides", "")
	assert.Equal(t, 2, decode[dto.ListResponse[entity.Slide]](t, raw).Total)
}

func TestAdminStorage_ModosYCambio(t *testing.T) {
	app, storage := buildTestApp(t)

	resp, raw := do(t, app, http.MethodGet, "/api/admin/storage", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	state := decode[dto.StorageResponse](t, raw)
	assert.Equal(t, "local", state.Preferred)
	assert.Len(t, state.Stores, 6)

	resp, _ = do(t, app, http.MethodPut, "/api/admin/storage", `{"mode":"cloud"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, storage.switched)

	storage.switchErr = domain.ErrRemoteUnavailable
	resp, raw = do(t, app, http.MethodPut, "/api/admin/storage", `{"mode":"remote"}`)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "REMOTE_UNAVAILABLE", decode[dto.ErrorResponse](t, raw).Code)
	assert.Equal(t, []syncstore.Mode{syncstore.Remote}, storage.switched)

	resp, _ = do(t, app, http.MethodDelete, "/api/admin/cache", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 1, storage.cleared)
}

func TestAdminStream_ColeccionDesconocida(t *testing.T) {
	app, _ := buildTestApp(t)

	resp, _ := do(t, app, http.MethodGet, "/api/admin/stream/orders", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestRequestLogger_RegistraEstado(t *testing.T) {
	var buf bytes.Buffer
	app := fiber.New()
	app.Use(apphttp.RequestLogger(logger.NewWithWriter(&buf, "info")))
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/falta", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "/falta", entry["path"])
	assert.EqualValues(t, 404, entry["status"])
}
