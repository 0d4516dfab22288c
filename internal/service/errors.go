package service

import (
	"errors"

	"restaurante/internal/repository"

	"gorm.io/gorm"
)

// Error kinds. Handlers branch on these with errors.Is.
var (
	ErrNoEncontrado = errors.New("no encontrado")
	ErrConflicto    = errors.New("conflicto")
	ErrIntegridad   = errors.New("integridad referencial")
	ErrCredenciales = errors.New("credenciales inválidas")
	ErrInvalido     = errors.New("solicitud inválida")
)

// MsgIntegridad is shown when a write breaks a foreign key.
const MsgIntegridad = "Error de consulta: posiblemente restricciones de integridad referencial"

// MsgValorInvalido is shown when a value does not fit its column.
const MsgValorInvalido = "Uno de los valores está fuera del rango permitido."

// Error is a domain failure with a user-facing message.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Kind }

func noEncontrado(entidad string) error {
	return &Error{Kind: ErrNoEncontrado, Message: entidad + " no encontrado"}
}

func conflicto(msg string) error { return &Error{Kind: ErrConflicto, Message: msg} }

func invalido(msg string) error { return &Error{Kind: ErrInvalido, Message: msg} }

// traducir turns repository errors into domain errors; anything unknown is
// returned as is and ends up as a 500.
func traducir(err error, entidad string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return noEncontrado(entidad)
	case errors.Is(err, repository.ErrIntegridad):
		return &Error{Kind: ErrIntegridad, Message: MsgIntegridad}
	case errors.Is(err, repository.ErrDuplicado):
		return conflicto("Ya existe un registro con esos datos.")
	case errors.Is(err, repository.ErrValorInvalido):
		return invalido(MsgValorInvalido)
	}
	return err
}
