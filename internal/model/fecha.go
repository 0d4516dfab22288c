package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const layoutFecha = "2006-01-02"

// Fecha is a calendar date without time of day, exchanged as "YYYY-MM-DD"
// both on the wire and with the `date` columns.
type Fecha struct {
	time.Time
}

// ParseFecha accepts "YYYY-MM-DD" and full RFC 3339 timestamps (the date part is kept).
func ParseFecha(s string) (Fecha, error) {
	s = strings.TrimSpace(s)
	if len(s) > len(layoutFecha) && s[len(layoutFecha)] == 'T' {
		s = s[:len(layoutFecha)]
	}
	t, err := time.Parse(layoutFecha, s)
	if err != nil {
		return Fecha{}, fmt.Errorf("fecha inválida %q: se espera AAAA-MM-DD", s)
	}
	return Fecha{Time: t}, nil
}

func (f Fecha) String() string {
	if f.IsZero() {
		return ""
	}
	return f.Format(layoutFecha)
}

func (f Fecha) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + f.String() + `"`), nil
}

func (f *Fecha) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*f = Fecha{}
		return nil
	}
	parsed, err := ParseFecha(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Scan implements sql.Scanner.
func (f *Fecha) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*f = Fecha{}
		return nil
	case time.Time:
		*f = Fecha{Time: time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)}
		return nil
	case string:
		parsed, err := ParseFecha(v)
		if err != nil {
			return err
		}
		*f = parsed
		return nil
	case []byte:
		return f.Scan(string(v))
	}
	return fmt.Errorf("fecha: tipo no soportado %T", value)
}

// Value implements driver.Valuer.
func (f Fecha) Value() (driver.Value, error) {
	if f.IsZero() {
		return nil, nil
	}
	return f.String(), nil
}
