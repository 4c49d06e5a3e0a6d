package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidSlug       = errors.New("slug inválido")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrRemoteUnavailable = errors.New("backend remoto no disponible")
)

// ValidationError error de validación con mensaje apto para mostrar al usuario.
// Kind es el sentinel al que se desenvuelve (ErrInvalidInput por defecto).
type ValidationError struct {
	Field   string
	Message string
	Kind    error
}

// NewValidationError construye un error de validación sobre ErrInvalidInput.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message, Kind: ErrInvalidInput}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	if e.Kind == nil {
		return ErrInvalidInput
	}
	return e.Kind
}

// IsValidation indica si err proviene de una regla de validación (nunca de I/O).
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
