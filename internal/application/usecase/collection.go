package usecase

import (
	"context"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
)

// SyncedCollection operaciones de sincronización comunes a todos los stores.
// Las usan el contenedor, la API de administración y storectl.
type SyncedCollection interface {
	Kind() string
	Mode() syncstore.Mode
	SwitchMode(ctx context.Context, mode syncstore.Mode) error
	Reload(ctx context.Context) error
	Len() int
	Close()
}

// managed delega en el motor las operaciones sin reglas de negocio.
// Las escrituras pasan siempre por los métodos validados de cada store.
type managed[T, P any] struct {
	engine *syncstore.Store[T, P]
}

func (m managed[T, P]) Kind() string         { return m.engine.Kind() }
func (m managed[T, P]) Mode() syncstore.Mode { return m.engine.Mode() }
func (m managed[T, P]) Len() int             { return m.engine.Len() }
func (m managed[T, P]) Close()               { m.engine.Close() }

func (m managed[T, P]) SwitchMode(ctx context.Context, mode syncstore.Mode) error {
	return m.engine.SwitchMode(ctx, mode)
}

func (m managed[T, P]) Reload(ctx context.Context) error {
	return m.engine.Reload(ctx)
}

// Observe instantánea actual y una nueva tras cada mutación.
func (m managed[T, P]) Observe() (<-chan []T, func()) {
	return m.engine.Observe()
}

// Find busca por ID (igualdad entre representaciones).
func (m managed[T, P]) Find(id entity.ID) (T, bool) {
	return m.engine.Find(id)
}

// Options dependencias comunes de construcción de un store.
type Options struct {
	Cache syncstore.Cache
	Mode  syncstore.Mode
}
