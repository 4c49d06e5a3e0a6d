// Package wire contiene el esquema de cable del backend remoto (columnas
// snake_case, listas guardadas como texto JSON) y los mapeos explícitos
// fila ⇄ entidad compartidos por los gateways postgrest y postgres.
package wire

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jhoicas/mebel-store/internal/domain/catalog"
)

// DecodeList decodifica una columna de lista que puede llegar como array JSON
// o como texto con un array JSON dentro. Devuelve nil si no se puede interpretar.
func DecodeList[T any](raw []byte) []T {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	switch raw[0] {
	case '[':
		var out []T
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil
		}
		return out
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		if !strings.HasPrefix(s, "[") {
			return nil
		}
		return DecodeList[T]([]byte(s))
	}
	return nil
}

// DecodeStringList como DecodeList, pero además acepta una cadena suelta
// (JSON o texto plano) como lista de un elemento.
func DecodeStringList(raw []byte) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if list := DecodeList[string](raw); list != nil {
		return compact(list)
	}
	text := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil
		}
	}
	text = strings.TrimSpace(text)
	if text == "" || strings.HasPrefix(text, "[") {
		return nil
	}
	return []string{text}
}

// DecodeImages lista de imágenes con fallback al placeholder si queda vacía.
func DecodeImages(raw []byte) []string {
	images := DecodeStringList(raw)
	if len(images) == 0 {
		return []string{catalog.PlaceholderImage}
	}
	return images
}

// EncodeList serializa una lista como texto JSON (nil se escribe como "[]").
func EncodeList[T any](list []T) string {
	if list == nil {
		list = []T{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func compact(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
