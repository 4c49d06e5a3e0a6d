package usecase_test

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/mebel-store/internal/domain/entity"
)

var errDown = errors.New("backend caído")

// fakeGateway gateway genérico en memoria; cada operación puede forzarse a fallar.
type fakeGateway[T, P any] struct {
	mu         sync.Mutex
	rows       []T
	failFetch  bool
	failCreate bool
	failUpdate bool
	created    []T
	updates    []P
	deleted    []entity.ID
	assignID   func(T, int) T
}

func (f *fakeGateway[T, P]) FetchAll(context.Context) ([]T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFetch {
		return nil, errDown
	}
	return append([]T(nil), f.rows...), nil
}

func (f *fakeGateway[T, P]) Create(_ context.Context, item T) (*T, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failCreate {
		return nil, errDown
	}
	f.created = append(f.created, item)
	if f.assignID != nil {
		item = f.assignID(item, len(f.created))
	}
	return &item, nil
}

func (f *fakeGateway[T, P]) Update(_ context.Context, _ entity.ID, p P) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdate {
		return errDown
	}
	f.updates = append(f.updates, p)
	return nil
}

func (f *fakeGateway[T, P]) Delete(_ context.Context, id entity.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

// fakeContactInfo gateway del registro único.
type fakeContactInfo struct {
	mu      sync.Mutex
	record  *entity.ContactInfo
	upserts []entity.ContactInfo
	fail    bool
}

func (f *fakeContactInfo) Fetch(context.Context) (*entity.ContactInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errDown
	}
	if f.record == nil {
		return nil, nil
	}
	c := f.record.Clone()
	return &c, nil
}

func (f *fakeContactInfo) Upsert(_ context.Context, info entity.ContactInfo) (*entity.ContactInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return nil, errDown
	}
	saved := info.Clone()
	f.record = &saved
	f.upserts = append(f.upserts, saved)
	out := saved.Clone()
	return &out, nil
}
