// Package app arma el grafo de dependencias a partir de la configuración.
// Lo comparten el servidor HTTP y storectl.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/application/usecase"
	"github.com/jhoicas/mebel-store/internal/domain/repository"
	"github.com/jhoicas/mebel-store/internal/infrastructure/mirror"
	"github.com/jhoicas/mebel-store/internal/infrastructure/postgres"
	"github.com/jhoicas/mebel-store/internal/infrastructure/postgrest"
	"github.com/jhoicas/mebel-store/internal/infrastructure/prefs"
	"github.com/jhoicas/mebel-store/internal/infrastructure/seed"
	"github.com/jhoicas/mebel-store/pkg/config"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

// gateways puertos remotos; todos nil cuando no hay backend.
type gateways struct {
	categories repository.CategoryGateway
	products   repository.ProductGateway
	shops      repository.ShopGateway
	slides     repository.SlideGateway
	messages   repository.ContactMessageGateway
	info       repository.ContactInfoGateway
}

// Container stores de la aplicación y control de sincronización global.
type Container struct {
	Categories      *usecase.CategoryStore
	Products        *usecase.ProductStore
	Shops           *usecase.ShopStore
	Slides          *usecase.SlideStore
	ContactInfo     *usecase.ContactInfoStore
	ContactMessages *usecase.ContactMessageStore

	log       *logger.Logger
	mirror    *mirror.Mirror
	backend   string
	prefsPath string
	closers   []func()

	mu        sync.Mutex
	preferred syncstore.Mode
}

// New construye el contenedor. Un backend inalcanzable no es error: los stores
// arrancan en local. Solo falla ante configuración inválida o espejo ilegible.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Container, error) {
	if log == nil {
		log = logger.Nop()
	}
	c := &Container{
		log:       log.Named("container"),
		backend:   cfg.Remote.Backend,
		prefsPath: cfg.Storage.PrefsPath,
	}

	storage, err := openMirrorStorage(cfg.Mirror)
	if err != nil {
		return nil, err
	}
	if closer, ok := storage.(interface{ Close() error }); ok {
		c.closers = append(c.closers, func() { _ = closer.Close() })
	}
	c.mirror = mirror.New(storage, cfg.Mirror.Namespace+":", log)

	gw, err := c.buildGateways(ctx, cfg)
	if err != nil {
		c.Close()
		return nil, err
	}

	p := prefs.Load(cfg.Storage.PrefsPath, cfg.Storage.Mode)
	mode, err := syncstore.ParseMode(p.StorageMode)
	if err != nil {
		mode = syncstore.Remote
	}
	c.preferred = mode
	opts := usecase.Options{Cache: c.mirror, Mode: mode}

	c.Categories = usecase.NewCategoryStore(ctx, gw.categories, opts, seed.Categories, log)
	c.Products = usecase.NewProductStore(ctx, gw.products, c.Categories, cfg.Assets.TrustedHosts, opts, seed.Products, log)
	c.Shops = usecase.NewShopStore(ctx, gw.shops, opts, seed.Shops, log)
	c.Slides = usecase.NewSlideStore(ctx, gw.slides, opts, seed.Slides, log)
	c.ContactInfo = usecase.NewContactInfoStore(ctx, gw.info, opts, seed.ContactInfo, log)
	c.ContactMessages = usecase.NewContactMessageStore(ctx, gw.messages, opts, log)

	c.log.Info().
		Str("backend", c.backend).
		Str("preferred", mode.String()).
		Msg("stores inicializados")
	return c, nil
}

func openMirrorStorage(cfg config.MirrorConfig) (mirror.Storage, error) {
	switch cfg.Driver {
	case config.MirrorSQLite:
		s, err := mirror.OpenSQLite(cfg.Path, int64(cfg.QuotaBytes))
		if err != nil {
			return nil, fmt.Errorf("espejo local: %w", err)
		}
		return s, nil
	default:
		return mirror.NewMemoryStorage(cfg.QuotaBytes), nil
	}
}

func (c *Container) buildGateways(ctx context.Context, cfg *config.Config) (gateways, error) {
	var gw gateways
	switch cfg.Remote.Backend {
	case config.BackendPostgREST:
		client, err := postgrest.NewClient(cfg.Remote.SupabaseURL, cfg.Remote.SupabaseKey, cfg.Remote.Timeout)
		if err != nil {
			return gw, fmt.Errorf("cliente PostgREST: %w", err)
		}
		categories := postgrest.NewCategoryGateway(client)
		gw.categories = categories
		gw.products = postgrest.NewProductGateway(client, categories)
		gw.shops = postgrest.NewShopGateway(client)
		gw.slides = postgrest.NewSlideGateway(client)
		gw.messages = postgrest.NewContactMessageGateway(client)
		gw.info = postgrest.NewContactInfoGateway(client)

	case config.BackendPostgres:
		connectCtx, cancel := context.WithTimeout(ctx, cfg.Remote.Timeout)
		defer cancel()
		pool, err := postgres.NewPool(connectCtx, cfg.DB)
		if err != nil {
			c.log.Warn().Err(err).Msg("PostgreSQL no disponible, se opera en local")
			c.backend = config.BackendNone
			return gw, nil
		}
		c.closers = append(c.closers, pool.Close)
		if err := postgres.EnsureSchema(connectCtx, pool); err != nil {
			c.log.Warn().Err(err).Msg("no se pudo verificar el esquema")
		}
		categories := postgres.NewCategoryGateway(pool)
		gw.categories = categories
		gw.products = postgres.NewProductGateway(pool, categories)
		gw.shops = postgres.NewShopGateway(pool)
		gw.slides = postgres.NewSlideGateway(pool)
		gw.messages = postgres.NewContactMessageGateway(pool)
		gw.info = postgres.NewContactInfoGateway(pool)
	}
	return gw, nil
}

// Collections todas las colecciones en orden de dependencia (categorías antes que productos).
func (c *Container) Collections() []usecase.SyncedCollection {
	return []usecase.SyncedCollection{c.Categories, c.Products, c.Shops, c.Slides, c.ContactInfo, c.ContactMessages}
}

// Collection busca una colección por su kind.
func (c *Container) Collection(kind string) (usecase.SyncedCollection, bool) {
	for _, col := range c.Collections() {
		if col.Kind() == kind {
			return col, true
		}
	}
	return nil, false
}

// Snapshot contenido actual de una colección, listo para serializar.
func (c *Container) Snapshot(kind string) (any, bool) {
	switch kind {
	case c.Categories.Kind():
		return c.Categories.GetAll(), true
	case c.Products.Kind():
		return c.Products.GetAll(), true
	case c.Shops.Kind():
		return c.Shops.GetAll(), true
	case c.Slides.Kind():
		return c.Slides.GetAll(), true
	case c.ContactInfo.Kind():
		return c.ContactInfo.Get(), true
	case c.ContactMessages.Kind():
		return c.ContactMessages.GetAll(), true
	}
	return nil, false
}

// Preferred modo guardado en las preferencias compartidas.
func (c *Container) Preferred() syncstore.Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.preferred
}

// Backend nombre del backend remoto efectivo.
func (c *Container) Backend() string { return c.backend }

// Modes modo efectivo de cada colección.
func (c *Container) Modes() map[string]syncstore.Mode {
	out := make(map[string]syncstore.Mode)
	for _, col := range c.Collections() {
		out[col.Kind()] = col.Mode()
	}
	return out
}

// SwitchMode cambia todas las colecciones y persiste la preferencia. Las que no
// alcanzan el remoto quedan en local; sus errores se devuelven juntos.
func (c *Container) SwitchMode(ctx context.Context, mode syncstore.Mode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for _, col := range c.Collections() {
		if err := col.SwitchMode(ctx, mode); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", col.Kind(), err))
		}
	}
	if err := prefs.Save(c.prefsPath, prefs.Prefs{StorageMode: mode.String()}); err != nil {
		c.log.Error().Err(err).Msg("guardar preferencias")
		errs = append(errs, err)
	}
	c.preferred = mode
	c.log.Info().Str("mode", mode.String()).Int("errors", len(errs)).Msg("modo de almacenamiento cambiado")
	return errors.Join(errs...)
}

// Reload relee todas las colecciones desde su fuente actual.
func (c *Container) Reload(ctx context.Context) error {
	var errs []error
	for _, col := range c.Collections() {
		if err := col.Reload(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", col.Kind(), err))
		}
	}
	return errors.Join(errs...)
}

// ClearCache vacía el espejo local (solo el namespace de la aplicación).
func (c *Container) ClearCache() {
	c.mirror.Clear()
	c.log.Info().Msg("espejo local vaciado")
}

// Close cierra los stores (y sus suscripciones) y libera conexiones.
func (c *Container) Close() {
	if c.Categories != nil {
		for _, col := range c.Collections() {
			col.Close()
		}
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}
