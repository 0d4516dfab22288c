package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Storage-level failures the service layer distinguishes. Lookups that find
// nothing return gorm.ErrRecordNotFound unchanged.
var (
	ErrIntegridad    = errors.New("violación de integridad referencial")
	ErrDuplicado     = errors.New("valor duplicado")
	// ErrValorInvalido covers CHECK constraints and numeric overflow.
	ErrValorInvalido = errors.New("valor fuera de rango")
)

// PostgreSQL SQLSTATE codes.
const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
	pgNumericOverflow     = "22003"
)

// clasificar maps driver errors onto the sentinels above, keeping the
// original text for logs. gorm's TranslateError covers the common path; the
// pgconn check catches errors raised through Exec/Raw.
func clasificar(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrIntegridad, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicado, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", ErrValorInvalido, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrIntegridad, pgErr.Message)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicado, pgErr.Message)
		case pgCheckViolation, pgNumericOverflow:
			return fmt.Errorf("%w: %s", ErrValorInvalido, pgErr.Message)
		}
	}
	return err
}

// conn picks the transaction handle when one is supplied.
func conn(db, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}
