// Package mirror implementa la caché local: un espejo de la última colección
// conocida por clave, consultado solo cuando el backend remoto no responde o
// cuando la tienda opera en modo local.
package mirror

import (
	"errors"
	"sort"
	"sync"
)

// ErrQuotaExceeded la escritura supera la capacidad del almacenamiento.
var ErrQuotaExceeded = errors.New("mirror: cuota de almacenamiento excedida")

// Storage almacenamiento clave-valor síncrono de cadenas con capacidad limitada.
type Storage interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
	Keys() ([]string, error)
}

// MemoryStorage almacenamiento en proceso con cuota en bytes (0 = sin límite).
// La cuota cuenta len(clave)+len(valor) de todas las entradas.
type MemoryStorage struct {
	mu    sync.Mutex
	data  map[string]string
	quota int
}

var _ Storage = (*MemoryStorage)(nil)

// NewMemoryStorage construye un almacenamiento en memoria.
func NewMemoryStorage(quotaBytes int) *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string), quota: quotaBytes}
}

func (s *MemoryStorage) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quota > 0 {
		used := 0
		for k, v := range s.data {
			if k != key {
				used += len(k) + len(v)
			}
		}
		if used+len(key)+len(value) > s.quota {
			return ErrQuotaExceeded
		}
	}
	s.data[key] = value
	return nil
}

func (s *MemoryStorage) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *MemoryStorage) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
