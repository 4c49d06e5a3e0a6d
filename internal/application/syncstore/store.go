// Package syncstore implementa el motor genérico de colección sincronizada:
// estado en memoria con actualización optimista, confirmación contra el
// backend remoto y espejo local como respaldo.
package syncstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/mebel-store/internal/domain"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
	"github.com/jhoicas/mebel-store/internal/domain/repository"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

// Cache espejo local best-effort (implementado por mirror.Mirror).
type Cache interface {
	Save(key string, value any)
	Load(key string, dest any) bool
}

// Binding describe cómo el motor manipula una colección concreta.
type Binding[T, P any] struct {
	Kind     string // nombre de la colección en logs y API
	CacheKey string
	ID       func(T) entity.ID
	WithID   func(T, entity.ID) T
	Apply    func(P, T) T
	// NextID asigna el ID provisional a partir de la colección actual.
	NextID   func([]T) entity.ID
	Defaults func() []T
	// Clone copia profunda; nil si T no comparte memoria.
	Clone    func(T) T
}

// SequentialID asignador "máximo ID entero + 1".
func SequentialID[T any](id func(T) entity.ID) func([]T) entity.ID {
	return func(items []T) entity.ID {
		ids := make([]entity.ID, len(items))
		for i, it := range items {
			ids[i] = id(it)
		}
		return entity.IntID(entity.MaxInt(ids) + 1)
	}
}

// Store colección sincronizada de una entidad.
//
// Cualquier fallo remoto (carga, alta, edición o baja) degrada el store a
// modo local durante el resto de la sesión; el estado optimista se conserva
// y se refleja en el espejo. Las llamadas de red y al espejo ocurren fuera del mutex.
type Store[T, P any] struct {
	mu    sync.Mutex
	items []T
	mode  Mode

	b      Binding[T, P]
	remote repository.CollectionGateway[T, P]
	cache  Cache
	bc     *Broadcaster[[]T]
	log    *logger.Logger
}

// New construye el store y ejecuta la carga inicial según mode.
// remote nil significa que no hay backend: el store opera siempre en local.
func New[T, P any](ctx context.Context, b Binding[T, P], remote repository.CollectionGateway[T, P], cache Cache, mode Mode, log *logger.Logger) *Store[T, P] {
	if log == nil {
		log = logger.Nop()
	}
	if cache == nil {
		cache = noCache{}
	}
	s := &Store[T, P]{
		b:      b,
		remote: remote,
		cache:  cache,
		bc:     NewBroadcaster[[]T](),
		log:    log.Named("syncstore").Field("store", b.Kind),
	}
	s.mode = mode
	if remote == nil {
		s.mode = Local
	}
	s.init(ctx)
	return s
}

// init carga remota si corresponde; si no hay datos remotos usa el espejo y luego los defaults.
func (s *Store[T, P]) init(ctx context.Context) {
	if s.currentMode() == Remote {
		items, err := s.remote.FetchAll(ctx)
		switch {
		case err != nil:
			s.downgrade("init", entity.ID{}, err)
		case len(items) > 0:
			s.replace(items)
			s.persist()
			return
		}
	}
	s.replace(s.loadLocal())
	s.persist()
}

func (s *Store[T, P]) loadLocal() []T {
	var cached []T
	if s.cache.Load(s.b.CacheKey, &cached) && len(cached) > 0 {
		return cached
	}
	if s.b.Defaults == nil {
		return nil
	}
	return s.b.Defaults()
}

// Kind nombre de la colección.
func (s *Store[T, P]) Kind() string { return s.b.Kind }

// Mode modo actual del store.
func (s *Store[T, P]) Mode() Mode { return s.currentMode() }

func (s *Store[T, P]) currentMode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// GetAll instantánea de la colección (sin I/O).
func (s *Store[T, P]) GetAll() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Len tamaño de la colección.
func (s *Store[T, P]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Find busca por ID con igualdad entre representaciones.
func (s *Store[T, P]) Find(id entity.ID) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.clone(s.items[i]), true
	}
	var zero T
	return zero, false
}

// Observe emite la instantánea actual y luego una por cada mutación.
// cancel da de baja la suscripción y cierra el canal.
func (s *Store[T, P]) Observe() (<-chan []T, func()) {
	return s.bc.Subscribe()
}

// Add inserta item de forma optimista con un ID provisional (si no trae uno)
// y, en modo remoto, lo confirma contra el backend sustituyendo el ID por el del servidor.
func (s *Store[T, P]) Add(ctx context.Context, item T) (T, error) {
	s.mu.Lock()
	id := s.b.ID(item)
	if id.IsZero() {
		id = s.b.NextID(s.items)
		item = s.b.WithID(item, id)
	} else if s.indexLocked(id) >= 0 {
		s.mu.Unlock()
		var zero T
		return zero, fmt.Errorf("%s %s: %w", s.b.Kind, id, domain.ErrDuplicate)
	}
	item = s.clone(item)
	s.items = append(s.items, item)
	s.publishLocked()
	mode := s.mode
	s.mu.Unlock()

	if mode == Remote {
		created, err := s.remote.Create(ctx, s.clone(item))
		switch {
		case err != nil:
			s.downgrade("add", id, err)
		case created != nil:
			confirmed, ok := s.confirm(id, *created)
			if !ok {
				s.downgrade("add", id, fmt.Errorf("el servidor asignó %s, ya presente en la colección: %w", s.b.ID(*created), domain.ErrConflict))
				break
			}
			item = confirmed
		}
	}
	s.persist()
	return s.clone(item), nil
}

// confirm reemplaza la entidad provisional por la creada en el servidor.
// Si el ID del servidor ya pertenece a otra entidad en memoria (p. ej. defaults
// que el backend nunca guardó) no se sustituye nada y devuelve false.
func (s *Store[T, P]) confirm(provisional entity.ID, created T) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	created = s.clone(created)
	i := s.indexLocked(provisional)
	if j := s.indexLocked(s.b.ID(created)); j >= 0 && j != i {
		return created, false
	}
	if i >= 0 {
		s.items[i] = created
		s.publishLocked()
	}
	return created, true
}

// Update aplica patch de forma optimista y lo propaga al backend en modo remoto.
// Devuelve domain.ErrNotFound si id no está en la colección.
func (s *Store[T, P]) Update(ctx context.Context, id entity.ID, patch P) (T, error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		var zero T
		return zero, fmt.Errorf("%s %s: %w", s.b.Kind, id, domain.ErrNotFound)
	}
	current := s.items[i]
	updated := s.b.WithID(s.b.Apply(patch, s.clone(current)), s.b.ID(current))
	s.items[i] = updated
	s.publishLocked()
	mode := s.mode
	remoteID := s.b.ID(current)
	s.mu.Unlock()

	if mode == Remote {
		if err := s.remote.Update(ctx, remoteID, patch); err != nil {
			s.downgrade("update", remoteID, err)
		}
	}
	s.persist()
	return s.clone(updated), nil
}

// Delete elimina id de la colección sin esperar al backend. false si no existía.
func (s *Store[T, P]) Delete(ctx context.Context, id entity.ID) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	remoteID := s.b.ID(s.items[i])
	s.items = append(s.items[:i:i], s.items[i+1:]...)
	s.publishLocked()
	mode := s.mode
	s.mu.Unlock()

	if mode == Remote {
		if err := s.remote.Delete(ctx, remoteID); err != nil {
			s.downgrade("delete", remoteID, err)
		}
	}
	s.persist()
	return true
}

// SwitchMode cambia el origen de verdad y recarga la colección completa desde él,
// descartando el estado optimista no sincronizado. No hace nada si el modo no cambia.
// Si la lectura remota falla el store queda en local con los datos del espejo
// y se devuelve un error que envuelve domain.ErrRemoteUnavailable.
func (s *Store[T, P]) SwitchMode(ctx context.Context, mode Mode) error {
	if mode != Local && mode != Remote {
		return domain.NewValidationError("mode", fmt.Sprintf("modo de almacenamiento inválido: %q", mode))
	}
	if s.currentMode() == mode {
		return nil
	}
	if mode == Remote && s.remote == nil {
		return fmt.Errorf("%s: sin backend remoto configurado: %w", s.b.Kind, domain.ErrRemoteUnavailable)
	}
	s.setMode(mode)
	return s.Reload(ctx)
}

// Reload vuelve a leer la colección desde el origen del modo actual.
// En remoto adopta exactamente el resultado del backend.
func (s *Store[T, P]) Reload(ctx context.Context) error {
	if s.currentMode() == Remote {
		items, err := s.remote.FetchAll(ctx)
		if err == nil {
			s.replace(items)
			s.persist()
			return nil
		}
		s.downgrade("reload", entity.ID{}, err)
		s.replace(s.loadLocal())
		return fmt.Errorf("%s: %w: %v", s.b.Kind, domain.ErrRemoteUnavailable, err)
	}
	s.replace(s.loadLocal())
	s.persist()
	return nil
}

// Close cierra los canales de los observadores.
func (s *Store[T, P]) Close() {
	s.bc.Close()
}

func (s *Store[T, P]) setMode(mode Mode) {
	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
}

// downgrade pasa a modo local para el resto de la sesión.
func (s *Store[T, P]) downgrade(op string, id entity.ID, err error) {
	s.mu.Lock()
	was := s.mode
	s.mode = Local
	s.mu.Unlock()

	ev := s.log.Warn().Err(err).Str("op", op)
	if !id.IsZero() {
		ev = ev.Str("id", id.String())
	}
	if was == Remote {
		ev.Msg("backend remoto no disponible; el store pasa a modo local")
		return
	}
	ev.Msg("backend remoto no disponible")
}

func (s *Store[T, P]) replace(items []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make([]T, 0, len(items))
	for _, it := range items {
		s.items = append(s.items, s.clone(it))
	}
	s.publishLocked()
}

// persist refleja la colección actual en el espejo local (fuera del mutex).
func (s *Store[T, P]) persist() {
	s.cache.Save(s.b.CacheKey, s.GetAll())
}

func (s *Store[T, P]) publishLocked() {
	s.bc.Publish(s.snapshotLocked())
}

func (s *Store[T, P]) snapshotLocked() []T {
	out := make([]T, len(s.items))
	for i, it := range s.items {
		out[i] = s.clone(it)
	}
	return out
}

func (s *Store[T, P]) indexLocked(id entity.ID) int {
	if id.IsZero() {
		return -1
	}
	for i, it := range s.items {
		if s.b.ID(it).Equal(id) {
			return i
		}
	}
	return -1
}

func (s *Store[T, P]) clone(v T) T {
	if s.b.Clone == nil {
		return v
	}
	return s.b.Clone(v)
}

type noCache struct{}

func (noCache) Save(string, any)      {}
func (noCache) Load(string, any) bool { return false }
