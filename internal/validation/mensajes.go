package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type etiqueta struct {
	texto    string
	femenino bool
}

var etiquetas = map[string]etiqueta{
	"nombre":        {"El nombre", false},
	"estado":        {"El estado", false},
	"email":         {"El correo electrónico", false},
	"password":      {"La contraseña", true},
	"newPassword":   {"La nueva contraseña", true},
	"rol":           {"El rol", false},
	"contacto":      {"El contacto", false},
	"empleadoID":    {"El ID del empleado", false},
	"clienteID":     {"El ID del cliente", false},
	"fecha":         {"La fecha", true},
	"horaInicio":    {"La hora de inicio", true},
	"horaFin":       {"La hora de término", true},
	"descripcion":   {"La descripción", true},
	"precio":        {"El precio", false},
	"ingredienteID": {"La lista de ingredientes", true},
	"cantidad":      {"La cantidad", true},
	"unidadMedida":  {"La unidad de medida", true},
	"total":         {"El total", false},
	"platos":        {"La lista de platos", true},
	"refresh_token": {"El token de refresco", false},
}

func etiquetaDe(campo string) etiqueta {
	// dive errors arrive as "platos[2]"
	if i := strings.IndexByte(campo, '['); i >= 0 {
		base := etiquetaDe(campo[:i]).texto
		return etiqueta{"Cada elemento de " + strings.ToLower(base[:1]) + base[1:], false}
	}
	if e, ok := etiquetas[campo]; ok {
		return e
	}
	return etiqueta{"El campo " + campo, false}
}

func (e etiqueta) genero(masc, fem string) string {
	if e.femenino {
		return fem
	}
	return masc
}

// mensaje renders one validator failure in Spanish.
func mensaje(fe validator.FieldError) string {
	et := etiquetaDe(fe.Field())
	p := fe.Param()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s es %s.", et.texto, et.genero("obligatorio", "obligatoria"))
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("%s debe tener como mínimo %s caracteres.", et.texto, p)
		case reflect.Slice:
			return fmt.Sprintf("%s debe contener al menos %s elemento(s).", et.texto, p)
		}
		return fmt.Sprintf("%s debe ser mayor o igual a %s.", et.texto, p)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s debe tener como máximo %s caracteres.", et.texto, p)
		}
		return fmt.Sprintf("%s debe ser menor o igual a %s.", et.texto, p)
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s.", et.texto, p)
	case "gte":
		return fmt.Sprintf("%s debe ser mayor o igual a %s.", et.texto, p)
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s.", et.texto, strings.ReplaceAll(p, "'", ""))
	case "email":
		return "El correo electrónico debe ser válido."
	case "dominio_email":
		return "El correo electrónico debe ser del dominio " + DominioEmail
	case "solo_letras":
		return fmt.Sprintf("%s solo puede contener letras y espacios.", et.texto)
	case "alphanum":
		return fmt.Sprintf("%s solo puede contener caracteres alfanuméricos.", et.texto)
	case "datetime":
		return fmt.Sprintf("%s debe tener el formato AAAA-MM-DD.", et.texto)
	case "decimal_10_2":
		return fmt.Sprintf("%s debe tener como máximo 2 decimales y ser menor que 100000000.", et.texto)
	case "hora":
		return fmt.Sprintf("%s debe tener el formato HH:MM.", et.texto)
	}
	return fmt.Sprintf("%s no es %s.", et.texto, et.genero("válido", "válida"))
}
