// Package validation holds the pure request validators. Each entity function
// takes a decoded payload and returns a Resultado carrying either the payload
// or Spanish field-level messages keyed by JSON field name.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// DominioEmail is the only mail domain accepted for employee accounts.
const DominioEmail = "@gmail.cl"

// CampoGeneral keys messages that do not belong to a single field.
const CampoGeneral = "general"

// Money and quantity columns are DECIMAL(10,2).
const escalaDecimal = 2

var limiteDecimal = decimal.New(1, 10-escalaDecimal)

var (
	reSoloLetras = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	reHora       = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// Errores maps a JSON field name to its message.
type Errores map[string]string

func (e Errores) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e[k])
	}
	return strings.Join(msgs, " ")
}

func (e Errores) agregar(otros Errores) {
	for k, v := range otros {
		if _, ok := e[k]; !ok {
			e[k] = v
		}
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Field() reports the JSON name ("horaInicio") instead of the Go one.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{fld.Tag.Get("json"), fld.Tag.Get("form")} {
			name := strings.SplitN(tag, ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	// Register decimal.Decimal as a numeric type so that validator tags like
	// gte=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "solo_letras", func(fl validator.FieldLevel) bool {
		return reSoloLetras.MatchString(fl.Field().String())
	})
	mustRegister(v, "dominio_email", func(fl validator.FieldLevel) bool {
		return strings.HasSuffix(fl.Field().String(), DominioEmail)
	})
	// Field() already holds the float64 from the type func above, so the
	// exact value is read back from the parent struct.
	mustRegister(v, "decimal_10_2", func(fl validator.FieldLevel) bool {
		d, ok := decimalOriginal(fl)
		if !ok {
			return false
		}
		return d.Equal(d.Truncate(escalaDecimal)) && d.Abs().LessThan(limiteDecimal)
	})
	mustRegister(v, "hora", func(fl validator.FieldLevel) bool {
		return reHora.MatchString(fl.Field().String())
	})
	return v
}

func decimalOriginal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	parent := reflect.Indirect(fl.Parent())
	if parent.Kind() != reflect.Struct {
		return decimal.Decimal{}, false
	}
	f := reflect.Indirect(parent.FieldByName(fl.StructFieldName()))
	if !f.IsValid() {
		return decimal.Decimal{}, false
	}
	d, ok := f.Interface().(decimal.Decimal)
	return d, ok
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Struct runs the tag rules on s and translates failures into Errores.
// A nil result means s passed.
func Struct(s interface{}) Errores {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return Errores{CampoGeneral: err.Error()}
	}
	out := make(Errores, len(fieldErrs))
	for _, fe := range fieldErrs {
		if _, dup := out[fe.Field()]; !dup {
			out[fe.Field()] = mensaje(fe)
		}
	}
	return out
}
