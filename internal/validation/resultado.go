package validation

import (
	"reflect"
	"strings"
)

// Resultado is the outcome of validating a payload of type T.
type Resultado[T any] struct {
	Valor   T
	Errores Errores
}

func (r Resultado[T]) Ok() bool { return len(r.Errores) == 0 }

// Regla is a rule that cannot be written as a struct tag.
type Regla[T any] func(T) Errores

// Validar runs the struct tags of v and then every extra rule, collecting all
// messages (the first message per field wins).
func Validar[T any](v T, reglas ...Regla[T]) Resultado[T] {
	errs := Errores{}
	errs.agregar(Struct(v))
	for _, r := range reglas {
		errs.agregar(r(v))
	}
	if len(errs) == 0 {
		errs = nil
	}
	return Resultado[T]{Valor: v, Errores: errs}
}

// AlMenosUno requires that at least one of the named JSON fields is present.
// Pointer, slice and map fields count as present when non-nil; other fields
// when non-zero.
func AlMenosUno[T any](campos ...string) Regla[T] {
	return func(v T) Errores {
		rv := reflect.Indirect(reflect.ValueOf(v))
		if rv.Kind() != reflect.Struct {
			return nil
		}
		rt := rv.Type()
		buscados := make(map[string]bool, len(campos))
		for _, c := range campos {
			buscados[c] = true
		}
		for i := 0; i < rt.NumField(); i++ {
			name := strings.SplitN(rt.Field(i).Tag.Get("json"), ",", 2)[0]
			if !buscados[name] {
				continue
			}
			if presente(rv.Field(i)) {
				return nil
			}
		}
		return Errores{CampoGeneral: "Debes proporcionar al menos un campo: " + enumerar(campos) + "."}
	}
}

func presente(f reflect.Value) bool {
	switch f.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return !f.IsNil()
	default:
		return !f.IsZero()
	}
}

func enumerar(campos []string) string {
	switch len(campos) {
	case 0:
		return ""
	case 1:
		return campos[0]
	}
	return strings.Join(campos[:len(campos)-1], ", ") + " o " + campos[len(campos)-1]
}

// OrdenHoras checks that a shift starts before it ends. Both values are
// zero-padded HH:MM so lexical order equals chronological order.
func OrdenHoras(inicio, fin string) Errores {
	if !reHora.MatchString(inicio) || !reHora.MatchString(fin) {
		return nil
	}
	if inicio >= fin {
		return Errores{"horaFin": "La hora de término debe ser posterior a la hora de inicio."}
	}
	return nil
}
