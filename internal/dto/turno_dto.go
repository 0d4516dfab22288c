package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// EmpleadoRef is the nested {"empleadoID": n} form the scheduling UI sends.
type EmpleadoRef struct {
	EmpleadoID uint `json:"empleadoID" validate:"required,gt=0,max=2147483647"`
}

type CrearTurnoRequest struct {
	Fecha      string       `json:"fecha"      validate:"required,datetime=2006-01-02"`
	HoraInicio string       `json:"horaInicio" validate:"required,hora"`
	HoraFin    string       `json:"horaFin"    validate:"required,hora"`
	EmpleadoID *uint        `json:"empleadoID" validate:"omitempty,gt=0,max=2147483647"`
	Empleado   *EmpleadoRef `json:"empleado"`
}

// ResolverEmpleadoID prefers the flat field and falls back to the nested reference.
func (r CrearTurnoRequest) ResolverEmpleadoID() *uint {
	return resolverEmpleado(r.EmpleadoID, r.Empleado)
}

type ActualizarTurnoRequest struct {
	Fecha      *string      `json:"fecha"      validate:"omitempty,datetime=2006-01-02"`
	HoraInicio *string      `json:"horaInicio" validate:"omitempty,hora"`
	HoraFin    *string      `json:"horaFin"    validate:"omitempty,hora"`
	EmpleadoID *uint        `json:"empleadoID" validate:"omitempty,gt=0,max=2147483647"`
	Empleado   *EmpleadoRef `json:"empleado"`
}

func (r ActualizarTurnoRequest) ResolverEmpleadoID() *uint {
	return resolverEmpleado(r.EmpleadoID, r.Empleado)
}

func resolverEmpleado(id *uint, ref *EmpleadoRef) *uint {
	if id != nil {
		return id
	}
	if ref != nil {
		v := ref.EmpleadoID
		return &v
	}
	return nil
}

// ConflictoTurnoQuery drives the advisory same-employee/same-date check.
type ConflictoTurnoQuery struct {
	EmpleadoID uint   `form:"empleadoID" validate:"required,gt=0,max=2147483647"`
	Fecha      string `form:"fecha"      validate:"required,datetime=2006-01-02"`
	Excluir    uint   `form:"excluir"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TurnoResponse struct {
	TurnoID    uint              `json:"turnoID"`
	Fecha      string            `json:"fecha"`
	HoraInicio string            `json:"horaInicio"`
	HoraFin    string            `json:"horaFin"`
	EmpleadoID *uint             `json:"empleadoID"`
	Empleado   *EmpleadoResponse `json:"empleado"`
}

type ConflictoTurnoResponse struct {
	Conflicto bool `json:"conflicto"`
}
