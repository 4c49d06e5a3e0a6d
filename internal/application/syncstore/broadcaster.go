package syncstore

import "sync"

// Broadcaster difusión multicast "caliente": cada suscriptor recibe primero el
// último valor publicado y después los siguientes. Un suscriptor lento nunca
// bloquea al publicador: si su buffer está lleno se reemplaza por el valor más reciente.
type Broadcaster[T any] struct {
	mu     sync.Mutex
	subs   map[uint64]chan T
	next   uint64
	latest T
	has    bool
	closed bool
}

// NewBroadcaster crea un broadcaster sin valor inicial.
func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{subs: make(map[uint64]chan T)}
}

// Subscribe devuelve el canal de valores y la función para darse de baja
// (idempotente; cierra el canal). Tras Close el canal llega ya cerrado.
func (b *Broadcaster[T]) Subscribe() (<-chan T, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan T, 1)
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	if b.has {
		ch <- b.latest
	}
	id := b.next
	b.next++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if c, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(c)
			}
		})
	}
}

// Publish guarda v como último valor y lo entrega a todos los suscriptores.
func (b *Broadcaster[T]) Publish(v T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.latest = v
	b.has = true
	for _, ch := range b.subs {
		select {
		case ch <- v:
		default:
			// buffer lleno: descartar el valor pendiente y dejar solo el más reciente
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- v:
			default:
			}
		}
	}
}

// Latest último valor publicado.
func (b *Broadcaster[T]) Latest() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.latest, b.has
}

// Subscribers número de suscripciones activas.
func (b *Broadcaster[T]) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close cierra todos los canales; Publish posteriores se ignoran.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
