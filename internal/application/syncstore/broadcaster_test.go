package syncstore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/mebel-store/internal/application/syncstore"
)

func TestBroadcaster_ReplayDelUltimo(t *testing.T) {
	b := syncstore.NewBroadcaster[int]()
	b.Publish(1)
	b.Publish(2)

	ch, cancel := b.Subscribe()
	defer cancel()
	assert.Equal(t, 2, <-ch)
}

func TestBroadcaster_SuscriptorLentoRecibeElMasReciente(t *testing.T) {
	b := syncstore.NewBroadcaster[int]()
	ch, cancel := b.Subscribe()
	defer cancel()

	for i := 1; i <= 5; i++ {
		b.Publish(i)
	}
	assert.Equal(t, 5, <-ch)
	select {
	case v := <-ch:
		t.Fatalf("valor inesperado %d", v)
	default:
	}
}

func TestBroadcaster_VariosSuscriptores(t *testing.T) {
	b := syncstore.NewBroadcaster[string]()
	a, cancelA := b.Subscribe()
	c, cancelC := b.Subscribe()
	assert.Equal(t, 2, b.Subscribers())

	b.Publish("x")
	assert.Equal(t, "x", <-a)
	assert.Equal(t, "x", <-c)

	cancelA()
	assert.Equal(t, 1, b.Subscribers())
	cancelC()
	assert.Zero(t, b.Subscribers())
}

func TestBroadcaster_Close(t *testing.T) {
	b := syncstore.NewBroadcaster[int]()
	ch, cancel := b.Subscribe()
	b.Close()
	_, open := <-ch
	assert.False(t, open)
	cancel()

	late, _ := b.Subscribe()
	_, open = <-late
	assert.False(t, open)

	b.Publish(1)
	_, has := b.Latest()
	assert.False(t, has)
}
