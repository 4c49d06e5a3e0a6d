package mirror

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strings"

	"github.com/jhoicas/mebel-store/pkg/logger"
)

// Mirror caché best-effort de la última instantánea válida de cada colección.
// Un slot por clave, sin expiración ni política de reemplazo: ante cuota
// excedida se liberan las dos claves más grandes y la escritura se descarta.
type Mirror struct {
	storage   Storage
	namespace string
	log       *logger.Logger
}

// New construye el espejo; todas las claves se guardan con el prefijo namespace.
func New(storage Storage, namespace string, log *logger.Logger) *Mirror {
	if log == nil {
		log = logger.Nop()
	}
	return &Mirror{storage: storage, namespace: namespace, log: log.Named("mirror")}
}

// Save serializa value y lo escribe bajo key. Las imágenes en data URI se
// reemplazan por "" antes de escribir. Nunca falla hacia el llamador.
func (m *Mirror) Save(key string, value any) {
	raw, err := encodeStripped(value)
	if err != nil {
		m.log.Error().Err(err).Str("key", key).Msg("serializar espejo")
		return
	}
	err = m.storage.Set(m.namespace+key, string(raw))
	if err == nil {
		return
	}
	if errors.Is(err, ErrQuotaExceeded) {
		freed := m.evictLargest(2)
		m.log.Warn().Str("key", key).Strs("freed", freed).Int("bytes", len(raw)).
			Msg("cuota excedida: se liberan las claves más grandes, la escritura se descarta")
		return
	}
	m.log.Error().Err(err).Str("key", key).Msg("escribir espejo")
}

// Load lee key en dest. Devuelve false si no existe o está corrupto.
func (m *Mirror) Load(key string, dest any) bool {
	raw, ok, err := m.storage.Get(m.namespace + key)
	if err != nil {
		m.log.Error().Err(err).Str("key", key).Msg("leer espejo")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		m.log.Warn().Err(err).Str("key", key).Msg("espejo corrupto, se trata como vacío")
		return false
	}
	return true
}

// Clear elimina todas las claves del namespace.
func (m *Mirror) Clear() {
	keys, err := m.storage.Keys()
	if err != nil {
		m.log.Error().Err(err).Msg("listar claves del espejo")
		return
	}
	for _, k := range keys {
		if !strings.HasPrefix(k, m.namespace) {
			continue
		}
		if err := m.storage.Remove(k); err != nil {
			m.log.Error().Err(err).Str("key", k).Msg("borrar clave del espejo")
		}
	}
}

// Keys claves presentes en el namespace (sin prefijo).
func (m *Mirror) Keys() []string {
	keys, err := m.storage.Keys()
	if err != nil {
		m.log.Error().Err(err).Msg("listar claves del espejo")
		return nil
	}
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if strings.HasPrefix(k, m.namespace) {
			out = append(out, strings.TrimPrefix(k, m.namespace))
		}
	}
	return out
}

func (m *Mirror) evictLargest(n int) []string {
	keys, err := m.storage.Keys()
	if err != nil {
		return nil
	}
	type sized struct {
		key  string
		size int
	}
	var list []sized
	for _, k := range keys {
		if !strings.HasPrefix(k, m.namespace) {
			continue
		}
		v, ok, err := m.storage.Get(k)
		if err != nil || !ok {
			continue
		}
		list = append(list, sized{key: k, size: len(v)})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].size > list[j].size })

	var freed []string
	for i := 0; i < len(list) && i < n; i++ {
		if err := m.storage.Remove(list[i].key); err == nil {
			freed = append(freed, strings.TrimPrefix(list[i].key, m.namespace))
		}
	}
	return freed
}

// encodeStripped serializa value reemplazando cualquier cadena "data:image/..."
// por "" para no agotar la cuota con imágenes embebidas.
func encodeStripped(value any) ([]byte, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	if !bytes.Contains(raw, []byte(`"data:image/`)) {
		return raw, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var tree any
	if err := dec.Decode(&tree); err != nil {
		return nil, err
	}
	return json.Marshal(stripDataURIs(tree))
}

func stripDataURIs(v any) any {
	switch t := v.(type) {
	case string:
		if strings.HasPrefix(t, "data:image/") {
			return ""
		}
		return t
	case []any:
		for i := range t {
			t[i] = stripDataURIs(t[i])
		}
		return t
	case map[string]any:
		for k := range t {
			t[k] = stripDataURIs(t[k])
		}
		return t
	default:
		return v
	}
}
