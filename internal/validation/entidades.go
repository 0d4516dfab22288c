package validation

import (
	"net/url"
	"strconv"

	"restaurante/internal/dto"
)

// ── Cliente ───────────────────────────────────────────────────────────────────

func CrearCliente(req dto.CrearClienteRequest) Resultado[dto.CrearClienteRequest] {
	return Validar(req)
}

func ActualizarCliente(req dto.ActualizarClienteRequest) Resultado[dto.ActualizarClienteRequest] {
	return Validar(req, AlMenosUno[dto.ActualizarClienteRequest]("nombre", "estado"))
}

// ── Empleado ──────────────────────────────────────────────────────────────────

func CrearEmpleado(req dto.CrearEmpleadoRequest) Resultado[dto.CrearEmpleadoRequest] {
	return Validar(req)
}

func ActualizarEmpleado(req dto.ActualizarEmpleadoRequest) Resultado[dto.ActualizarEmpleadoRequest] {
	return Validar(req,
		AlMenosUno[dto.ActualizarEmpleadoRequest]("nombre", "email", "password", "newPassword", "rol", "contacto"),
		func(r dto.ActualizarEmpleadoRequest) Errores {
			if r.NewPassword != nil && r.Password == nil {
				return Errores{"password": "La contraseña actual es obligatoria para cambiarla."}
			}
			return nil
		},
	)
}

// BuscarEmpleado validates the employee lookup query: empleadoID and/or email,
// nothing else.
func BuscarEmpleado(q url.Values) Resultado[dto.BuscarEmpleadoQuery] {
	var out dto.BuscarEmpleadoQuery
	errs := Errores{}

	for k := range q {
		if k != "empleadoID" && k != "email" {
			errs[CampoGeneral] = "No se permiten propiedades adicionales."
		}
	}
	if raw := q.Get("empleadoID"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			errs["empleadoID"] = "El ID debe ser un número entero."
		} else {
			out.EmpleadoID = &id
		}
	}
	if raw := q.Get("email"); raw != "" {
		out.Email = &raw
	}
	if out.EmpleadoID == nil && out.Email == nil {
		if _, bad := errs["empleadoID"]; !bad {
			errs[CampoGeneral] = "Debes proporcionar al menos un campo: empleadoID o email."
		}
	}
	errs.agregar(Struct(out))
	if len(errs) == 0 {
		errs = nil
	}
	return Resultado[dto.BuscarEmpleadoQuery]{Valor: out, Errores: errs}
}

// ── Turno ─────────────────────────────────────────────────────────────────────

func CrearTurno(req dto.CrearTurnoRequest) Resultado[dto.CrearTurnoRequest] {
	return Validar(req, func(r dto.CrearTurnoRequest) Errores {
		return OrdenHoras(r.HoraInicio, r.HoraFin)
	})
}

// ActualizarTurno checks the payload alone; the hour order of the merged
// record is checked by the service.
func ActualizarTurno(req dto.ActualizarTurnoRequest) Resultado[dto.ActualizarTurnoRequest] {
	return Validar(req, AlMenosUno[dto.ActualizarTurnoRequest]("fecha", "horaInicio", "horaFin", "empleadoID", "empleado"))
}

func ConflictoTurno(q dto.ConflictoTurnoQuery) Resultado[dto.ConflictoTurnoQuery] {
	return Validar(q)
}

// ── Ingrediente ───────────────────────────────────────────────────────────────

func CrearIngrediente(req dto.CrearIngredienteRequest) Resultado[dto.CrearIngredienteRequest] {
	return Validar(req)
}

func ActualizarIngrediente(req dto.ActualizarIngredienteRequest) Resultado[dto.ActualizarIngredienteRequest] {
	return Validar(req, AlMenosUno[dto.ActualizarIngredienteRequest]("nombre", "cantidad", "unidadMedida"))
}

// ── Plato ─────────────────────────────────────────────────────────────────────

func CrearPlato(req dto.CrearPlatoRequest) Resultado[dto.CrearPlatoRequest] {
	return Validar(req)
}

func ActualizarPlato(req dto.ActualizarPlatoRequest) Resultado[dto.ActualizarPlatoRequest] {
	return Validar(req, AlMenosUno[dto.ActualizarPlatoRequest]("nombre", "descripcion", "precio", "disponibilidad", "ingredienteID"))
}

// ── Pedido ────────────────────────────────────────────────────────────────────

func CrearPedido(req dto.CrearPedidoRequest) Resultado[dto.CrearPedidoRequest] {
	return Validar(req)
}

func ActualizarPedido(req dto.ActualizarPedidoRequest) Resultado[dto.ActualizarPedidoRequest] {
	return Validar(req, AlMenosUno[dto.ActualizarPedidoRequest]("fecha", "estado", "total", "clienteID", "empleadoID", "platos", "liberado"))
}

// ── Auth ──────────────────────────────────────────────────────────────────────

func Login(req dto.LoginRequest) Resultado[dto.LoginRequest] { return Validar(req) }

func Refresh(req dto.RefreshRequest) Resultado[dto.RefreshRequest] { return Validar(req) }
