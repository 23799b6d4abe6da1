package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthenticated")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict with current state")
	ErrInsufficientStock  = errors.New("insufficient stock")
)

// FieldError mensaje de validación asociado a un campo.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrega todos los errores de campo de una entrada.
// errors.Is(err, ErrInvalidInput) es true para cualquier ValidationError.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye un ValidationError con un único campo.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Add agrega un error de campo.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors indica si hay al menos un campo inválido.
func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// Messages devuelve solo los mensajes, en orden.
func (e *ValidationError) Messages() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.Message)
	}
	return out
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages(), "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Error error de dominio con un mensaje legible para el cliente.
// errors.Is(err, Kind) es true, p.ej. errors.Is(NewConflict("..."), ErrConflict).
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NewConflict conflicto con el estado actual (duplicados, borrados bloqueados).
func NewConflict(msg string) error { return &Error{Kind: ErrConflict, Message: msg} }

// NewNotFound recurso inexistente.
func NewNotFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

// NewForbidden operación no permitida para el rol o el dueño.
func NewForbidden(msg string) error { return &Error{Kind: ErrForbidden, Message: msg} }

// NewInvalidInput entrada inválida sin campo asociado.
func NewInvalidInput(msg string) error { return &Error{Kind: ErrInvalidInput, Message: msg} }
