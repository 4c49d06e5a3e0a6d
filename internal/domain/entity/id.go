package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID identificador de entidad: entero secuencial (asignado localmente) o
// cadena opaca (asignada por el backend remoto, p. ej. UUID).
// El valor cero representa "sin asignar".
type ID struct {
	num   int64
	str   string
	isStr bool
}

// IntID construye un ID entero.
func IntID(n int64) ID { return ID{num: n} }

// StringID construye un ID de cadena. Una cadena vacía produce el ID cero.
func StringID(s string) ID {
	s = strings.TrimSpace(s)
	if s == "" {
		return ID{}
	}
	return ID{str: s, isStr: true}
}

// ParseID interpreta s como entero si es posible; si no, como cadena opaca.
func ParseID(s string) ID {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return IntID(n)
	}
	return StringID(s)
}

// IsZero indica si el ID no fue asignado.
func (id ID) IsZero() bool {
	return !id.isStr && id.num == 0
}

// Int devuelve el valor entero cuando el ID es numérico (o una cadena numérica).
func (id ID) Int() (int64, bool) {
	if !id.isStr {
		return id.num, !id.IsZero()
	}
	n, err := strconv.ParseInt(id.str, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Equal compara dos IDs con igualdad entre representaciones: "5" == 5.
func (id ID) Equal(other ID) bool {
	if id.isStr == other.isStr {
		return id.num == other.num && id.str == other.str
	}
	a, okA := id.Int()
	b, okB := other.Int()
	return okA && okB && a == b
}

func (id ID) String() string {
	if id.isStr {
		return id.str
	}
	if id.num == 0 {
		return ""
	}
	return strconv.FormatInt(id.num, 10)
}

// MarshalJSON emite número o cadena según la representación.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	if id.isStr {
		return json.Marshal(id.str)
	}
	return []byte(strconv.FormatInt(id.num, 10)), nil
}

// UnmarshalJSON acepta número, cadena o null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("id: %w", err)
		}
		*id = StringID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("id no entero: %s", n)
	}
	*id = IntID(v)
	return nil
}

// MaxInt devuelve el mayor ID entero de la lista (0 si no hay enteros).
func MaxInt(ids []ID) int64 {
	var max int64
	for _, id := range ids {
		if n, ok := id.Int(); ok && n > max {
			max = n
		}
	}
	return max
}
