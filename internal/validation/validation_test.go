package validation

import (
	"net/url"
	"testing"

	"restaurante/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

// ── Empleado ──────────────────────────────────────────────────────────────────

func validEmpleado() dto.CrearEmpleadoRequest {
	return dto.CrearEmpleadoRequest{
		Nombre:   "Juan Pérez",
		Email:    "juan.perez@gmail.cl",
		Password: "secreto123",
		Rol:      "Mesero",
	}
}

func TestCrearEmpleado_EmailDomain(t *testing.T) {
	req := validEmpleado()
	req.Email = "juan.perez@hotmail.com"

	res := CrearEmpleado(req)

	assert.False(t, res.Ok())
	assert.Equal(t, "El correo electrónico debe ser del dominio @gmail.cl", res.Errores["email"])
}

func TestCrearEmpleado_EmailDomainIsCaseSensitive(t *testing.T) {
	for _, email := range []string{"JUAN.PEREZ@GMAIL.CL", "juan.perez@Gmail.cl"} {
		req := validEmpleado()
		req.Email = email
		res := CrearEmpleado(req)
		assert.Equal(t, "El correo electrónico debe ser del dominio @gmail.cl", res.Errores["email"], email)
	}

	res := ActualizarEmpleado(dto.ActualizarEmpleadoRequest{Email: strPtr("ANA.PEREZ@GMAIL.CL")})
	assert.Contains(t, res.Errores, "email")
}

func TestCrearEmpleado_Valid(t *testing.T) {
	res := CrearEmpleado(validEmpleado())
	assert.True(t, res.Ok(), res.Errores)
	assert.Equal(t, "juan.perez@gmail.cl", res.Valor.Email)
}

func TestCrearEmpleado_EmailTooShort(t *testing.T) {
	req := validEmpleado()
	req.Email = "a@gmail.cl" // 10 chars
	res := CrearEmpleado(req)
	assert.Equal(t, "El correo electrónico debe tener como mínimo 15 caracteres.", res.Errores["email"])
}

func TestCrearEmpleado_FieldRules(t *testing.T) {
	req := dto.CrearEmpleadoRequest{
		Nombre:   "Ana99",
		Email:    "ana.gomez@gmail.cl",
		Password: "corta",
		Rol:      "Cajero",
	}
	res := CrearEmpleado(req)

	assert.Equal(t, "El nombre solo puede contener letras y espacios.", res.Errores["nombre"])
	assert.Equal(t, "La contraseña debe tener como mínimo 8 caracteres.", res.Errores["password"])
	assert.Contains(t, res.Errores["rol"], "debe ser uno de")
	assert.NotContains(t, res.Errores, "email")
}

func TestCrearEmpleado_MissingFields(t *testing.T) {
	res := CrearEmpleado(dto.CrearEmpleadoRequest{})
	assert.Equal(t, "El nombre es obligatorio.", res.Errores["nombre"])
	assert.Equal(t, "La contraseña es obligatoria.", res.Errores["password"])
}

func TestActualizarEmpleado_RequiresOneField(t *testing.T) {
	res := ActualizarEmpleado(dto.ActualizarEmpleadoRequest{})
	assert.Equal(t,
		"Debes proporcionar al menos un campo: nombre, email, password, newPassword, rol o contacto.",
		res.Errores[CampoGeneral])
}

func TestActualizarEmpleado_NewPasswordNeedsCurrent(t *testing.T) {
	res := ActualizarEmpleado(dto.ActualizarEmpleadoRequest{NewPassword: strPtr("nuevaClave1")})
	assert.Contains(t, res.Errores, "password")

	res = ActualizarEmpleado(dto.ActualizarEmpleadoRequest{
		Password: strPtr("actualClave1"), NewPassword: strPtr("nuevaClave1"),
	})
	assert.True(t, res.Ok(), res.Errores)
}

func TestBuscarEmpleado(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
		campo string
	}{
		{"empty", url.Values{}, CampoGeneral},
		{"non numeric id", url.Values{"empleadoID": {"abc"}}, "empleadoID"},
		{"negative id", url.Values{"empleadoID": {"-3"}}, "empleadoID"},
		{"id past int4", url.Values{"empleadoID": {"2147483648"}}, "empleadoID"},
		{"id past uint32", url.Values{"empleadoID": {"99999999999"}}, "empleadoID"},
		{"bad domain", url.Values{"email": {"alguien@yahoo.com"}}, "email"},
		{"extra param", url.Values{"empleadoID": {"2"}, "rol": {"Chef"}}, CampoGeneral},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := BuscarEmpleado(tc.query)
			assert.False(t, res.Ok())
			assert.Contains(t, res.Errores, tc.campo)
		})
	}

	res := BuscarEmpleado(url.Values{"empleadoID": {"7"}})
	assert.True(t, res.Ok(), res.Errores)
	assert.Equal(t, 7, *res.Valor.EmpleadoID)
}

// ── Cliente ───────────────────────────────────────────────────────────────────

func TestCliente(t *testing.T) {
	assert.True(t, CrearCliente(dto.CrearClienteRequest{Nombre: "Mesa 1"}).Ok())
	assert.True(t, CrearCliente(dto.CrearClienteRequest{Nombre: "Mesa 2", Estado: "Con clientes"}).Ok())
	assert.Contains(t, CrearCliente(dto.CrearClienteRequest{Nombre: "Mesa 3", Estado: "ocupada"}).Errores, "estado")
	assert.Contains(t, CrearCliente(dto.CrearClienteRequest{}).Errores, "nombre")

	assert.False(t, ActualizarCliente(dto.ActualizarClienteRequest{}).Ok())
	assert.True(t, ActualizarCliente(dto.ActualizarClienteRequest{Estado: strPtr("disponible")}).Ok())
}

// ── Turno ─────────────────────────────────────────────────────────────────────

func TestCrearTurno(t *testing.T) {
	ok := dto.CrearTurnoRequest{Fecha: "2024-05-10", HoraInicio: "09:00", HoraFin: "17:30"}
	assert.True(t, CrearTurno(ok).Ok())

	reversed := ok
	reversed.HoraInicio, reversed.HoraFin = "18:00", "09:00"
	assert.Equal(t, "La hora de término debe ser posterior a la hora de inicio.", CrearTurno(reversed).Errores["horaFin"])

	badHour := ok
	badHour.HoraInicio = "25:00"
	assert.Equal(t, "La hora de inicio debe tener el formato HH:MM.", CrearTurno(badHour).Errores["horaInicio"])

	badDate := ok
	badDate.Fecha = "10/05/2024"
	assert.Contains(t, CrearTurno(badDate).Errores, "fecha")

	nested := ok
	nested.Empleado = &dto.EmpleadoRef{}
	assert.Contains(t, CrearTurno(nested).Errores, "empleadoID")
}

func TestOrdenHoras(t *testing.T) {
	assert.Nil(t, OrdenHoras("08:00", "08:01"))
	assert.NotNil(t, OrdenHoras("08:00", "08:00"))
	assert.Nil(t, OrdenHoras("bad", "08:00"))
}

// ── Plato / Ingrediente / Pedido ──────────────────────────────────────────────

func TestCrearPlato(t *testing.T) {
	req := dto.CrearPlatoRequest{
		Nombre: "Cazuela", Descripcion: "De vacuno",
		Precio: decimal.NewFromInt(5500), IngredienteID: []uint{1, 2},
	}
	assert.True(t, CrearPlato(req).Ok())

	free := req
	free.Precio = decimal.Zero
	assert.Contains(t, CrearPlato(free).Errores, "precio")

	noIngr := req
	noIngr.IngredienteID = []uint{}
	assert.Contains(t, CrearPlato(noIngr).Errores, "ingredienteID")

	badID := req
	badID.IngredienteID = []uint{1, 0}
	assert.Equal(t, "Cada elemento de la lista de ingredientes debe ser mayor que 0.", CrearPlato(badID).Errores["ingredienteID[1]"])

	hugeID := req
	hugeID.IngredienteID = []uint{2147483648}
	assert.Contains(t, CrearPlato(hugeID).Errores, "ingredienteID[0]")
}

func TestCrearPlato_PrecioFitsColumn(t *testing.T) {
	tests := []struct {
		precio string
		ok     bool
	}{
		{"1500", true},
		{"0.01", true},
		{"1500.50", true},
		{"1500.500", true},
		{"99999999.99", true},
		{"0.001", false},
		{"12.345", false},
		{"100000000", false},
		{"123456789012", false},
		{"1e400", false},
	}
	for _, tc := range tests {
		t.Run(tc.precio, func(t *testing.T) {
			req := dto.CrearPlatoRequest{
				Nombre: "Cazuela", Descripcion: "De vacuno",
				Precio: decimal.RequireFromString(tc.precio), IngredienteID: []uint{1},
			}
			res := CrearPlato(req)
			if tc.ok {
				assert.True(t, res.Ok(), res.Errores)
				return
			}
			assert.Equal(t, "El precio debe tener como máximo 2 decimales y ser menor que 100000000.", res.Errores["precio"])
		})
	}

	precio := decimal.RequireFromString("99999999999")
	assert.Contains(t, ActualizarPlato(dto.ActualizarPlatoRequest{Precio: &precio}).Errores, "precio")
}

func TestActualizarPlato_EmptyIngredientList(t *testing.T) {
	empty := []uint{}
	res := ActualizarPlato(dto.ActualizarPlatoRequest{IngredienteID: &empty})
	assert.Contains(t, res.Errores, "ingredienteID")
}

func TestIngrediente(t *testing.T) {
	neg := decimal.NewFromInt(-1)
	assert.Contains(t, CrearIngrediente(dto.CrearIngredienteRequest{Nombre: "Sal", Cantidad: &neg}).Errores, "cantidad")
	assert.True(t, CrearIngrediente(dto.CrearIngredienteRequest{Nombre: "Sal"}).Ok())

	fina := decimal.RequireFromString("0.005")
	assert.Contains(t, CrearIngrediente(dto.CrearIngredienteRequest{Nombre: "Sal", Cantidad: &fina}).Errores, "cantidad")
	enorme := decimal.New(1, 8)
	assert.Contains(t, ActualizarIngrediente(dto.ActualizarIngredienteRequest{Cantidad: &enorme}).Errores, "cantidad")
	exacta := decimal.RequireFromString("2.50")
	assert.True(t, CrearIngrediente(dto.CrearIngredienteRequest{Nombre: "Sal", Cantidad: &exacta}).Ok())
}

func TestPedido(t *testing.T) {
	assert.True(t, CrearPedido(dto.CrearPedidoRequest{Platos: []uint{1, 2}}).Ok())
	assert.Contains(t, CrearPedido(dto.CrearPedidoRequest{Estado: strPtr("Cancelado")}).Errores, "estado")

	assert.False(t, ActualizarPedido(dto.ActualizarPedidoRequest{}).Ok())
	empty := []uint{}
	assert.True(t, ActualizarPedido(dto.ActualizarPedidoRequest{Platos: &empty}).Ok())

	total := decimal.RequireFromString("123456789012")
	assert.Contains(t, CrearPedido(dto.CrearPedidoRequest{Total: &total}).Errores, "total")
	centimos := decimal.RequireFromString("10.999")
	assert.Contains(t, ActualizarPedido(dto.ActualizarPedidoRequest{Total: &centimos}).Errores, "total")

	cliente := uint(4294967295)
	assert.Contains(t, CrearPedido(dto.CrearPedidoRequest{ClienteID: &cliente}).Errores, "clienteID")
}
