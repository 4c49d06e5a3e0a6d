package syncstore

import (
	"fmt"
	"strings"

	"github.com/jhoicas/mebel-store/internal/domain"
)

// Mode origen de verdad de un store durante la sesión.
type Mode string

const (
	Local  Mode = "local"
	Remote Mode = "remote"
)

// ParseMode interpreta "local" o "remote" (sin distinguir mayúsculas).
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case Local:
		return Local, nil
	case Remote:
		return Remote, nil
	}
	return "", domain.NewValidationError("mode", fmt.Sprintf("modo de almacenamiento inválido: %q", s))
}

func (m Mode) String() string { return string(m) }
