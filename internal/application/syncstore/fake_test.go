package syncstore_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
	"github.com/jhoicas/mebel-store/internal/domain/entity"
	"github.com/jhoicas/mebel-store/internal/infrastructure/mirror"
	"github.com/jhoicas/mebel-store/pkg/logger"
)

var errRemote = errors.New("remote down")

// fakeSlides gateway en memoria con fallos configurables.
type fakeSlides struct {
	mu         sync.Mutex
	rows       []entity.Slide
	nextID     int64
	failFetch  bool
	failCreate bool
	failUpdate bool
	failDelete bool
	calls      map[string]int
}

func newFakeSlides(rows ...entity.Slide) *fakeSlides {
	return &fakeSlides{rows: rows, nextID: 100, calls: map[string]int{}}
}

func (f *fakeSlides) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeSlides) FetchAll(ctx context.Context) ([]entity.Slide, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["fetch"]++
	if f.failFetch {
		return nil, errRemote
	}
	return append([]entity.Slide(nil), f.rows...), nil
}

func (f *fakeSlides) Create(ctx context.Context, s entity.Slide) (*entity.Slide, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["create"]++
	if f.failCreate {
		return nil, errRemote
	}
	f.nextID++
	s.ID = entity.IntID(f.nextID)
	f.rows = append(f.rows, s)
	return &s, nil
}

func (f *fakeSlides) Update(ctx context.Context, id entity.ID, p entity.SlidePatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["update"]++
	if f.failUpdate {
		return errRemote
	}
	return nil
}

func (f *fakeSlides) Delete(ctx context.Context, id entity.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls["delete"]++
	if f.failDelete {
		return errRemote
	}
	return nil
}

func slideBinding(defaults ...entity.Slide) syncstore.Binding[entity.Slide, entity.SlidePatch] {
	return syncstore.Binding[entity.Slide, entity.SlidePatch]{
		Kind:     "slides",
		CacheKey: "slides",
		ID:       func(s entity.Slide) entity.ID { return s.ID },
		WithID:   func(s entity.Slide, id entity.ID) entity.Slide { s.ID = id; return s },
		Apply:    func(p entity.SlidePatch, s entity.Slide) entity.Slide { return p.Apply(s) },
		NextID:   syncstore.SequentialID(func(s entity.Slide) entity.ID { return s.ID }),
		Defaults: func() []entity.Slide { return append([]entity.Slide(nil), defaults...) },
	}
}

func newMirror() *mirror.Mirror {
	return mirror.New(mirror.NewMemoryStorage(0), "test:", logger.Nop())
}

func slide(id int64, title string, order int) entity.Slide {
	return entity.Slide{ID: entity.IntID(id), Title: title, Image: "s.jpg", Order: order, IsActive: true}
}

func titles(items []entity.Slide) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.Title
	}
	return out
}
