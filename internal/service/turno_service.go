package service

import (
	"context"

	"restaurante/internal/dto"
	"restaurante/internal/model"
	"restaurante/internal/repository"
	"restaurante/internal/validation"
)

// TurnoService manages work shifts. Same-employee/same-date overlap is only
// reported by Conflicto; Crear and Actualizar do not reject it.
type TurnoService interface {
	Crear(ctx context.Context, req dto.CrearTurnoRequest) (dto.TurnoResponse, error)
	Listar(ctx context.Context) ([]dto.TurnoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (dto.TurnoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarTurnoRequest) (dto.TurnoResponse, error)
	Eliminar(ctx context.Context, id uint) error
	Conflicto(ctx context.Context, q dto.ConflictoTurnoQuery) (bool, error)
}

type turnoService struct {
	repo repository.TurnoRepository
}

func NewTurnoService(repo repository.TurnoRepository) TurnoService {
	return &turnoService{repo: repo}
}

func mapTurno(t model.Turno) dto.TurnoResponse {
	resp := dto.TurnoResponse{
		TurnoID:    t.ID,
		Fecha:      t.Fecha.String(),
		HoraInicio: t.HoraInicio,
		HoraFin:    t.HoraFin,
		EmpleadoID: t.EmpleadoID,
	}
	if t.Empleado != nil {
		e := mapEmpleado(*t.Empleado)
		resp.Empleado = &e
	}
	return resp
}

// HayConflicto reports whether any shift other than excluirID belongs to
// empleadoID on fecha. excluirID 0 excludes nothing.
func HayConflicto(turnos []model.Turno, empleadoID uint, fecha model.Fecha, excluirID uint) bool {
	for _, t := range turnos {
		if t.ID == excluirID && excluirID != 0 {
			continue
		}
		if t.EmpleadoID != nil && *t.EmpleadoID == empleadoID && t.Fecha.Equal(fecha.Time) {
			return true
		}
	}
	return false
}

func (s *turnoService) Crear(ctx context.Context, req dto.CrearTurnoRequest) (dto.TurnoResponse, error) {
	fecha, err := model.ParseFecha(req.Fecha)
	if err != nil {
		return dto.TurnoResponse{}, validation.Errores{"fecha": "La fecha debe tener el formato AAAA-MM-DD."}
	}
	t := &model.Turno{
		Fecha:      fecha,
		HoraInicio: req.HoraInicio,
		HoraFin:    req.HoraFin,
		EmpleadoID: req.ResolverEmpleadoID(),
	}
	if err := s.repo.Crear(ctx, t); err != nil {
		return dto.TurnoResponse{}, traducir(err, "Turno")
	}
	return s.ObtenerPorID(ctx, t.ID)
}

func (s *turnoService) Listar(ctx context.Context) ([]dto.TurnoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.TurnoResponse, 0, len(list))
	for _, t := range list {
		result = append(result, mapTurno(t))
	}
	return result, nil
}

func (s *turnoService) ObtenerPorID(ctx context.Context, id uint) (dto.TurnoResponse, error) {
	t, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.TurnoResponse{}, traducir(err, "Turno")
	}
	return mapTurno(*t), nil
}

func (s *turnoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarTurnoRequest) (dto.TurnoResponse, error) {
	t, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.TurnoResponse{}, traducir(err, "Turno")
	}

	if req.Fecha != nil {
		fecha, err := model.ParseFecha(*req.Fecha)
		if err != nil {
			return dto.TurnoResponse{}, validation.Errores{"fecha": "La fecha debe tener el formato AAAA-MM-DD."}
		}
		t.Fecha = fecha
	}
	if req.HoraInicio != nil {
		t.HoraInicio = *req.HoraInicio
	}
	if req.HoraFin != nil {
		t.HoraFin = *req.HoraFin
	}
	if empID := req.ResolverEmpleadoID(); empID != nil {
		t.EmpleadoID = empID
		t.Empleado = nil
	}
	if errs := validation.OrdenHoras(t.HoraInicio, t.HoraFin); errs != nil {
		return dto.TurnoResponse{}, errs
	}

	if err := s.repo.Actualizar(ctx, t); err != nil {
		return dto.TurnoResponse{}, traducir(err, "Turno")
	}
	return s.ObtenerPorID(ctx, id)
}

func (s *turnoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return traducir(err, "Turno")
	}
	return traducir(s.repo.Eliminar(ctx, id), "Turno")
}

func (s *turnoService) Conflicto(ctx context.Context, q dto.ConflictoTurnoQuery) (bool, error) {
	fecha, err := model.ParseFecha(q.Fecha)
	if err != nil {
		return false, validation.Errores{"fecha": "La fecha debe tener el formato AAAA-MM-DD."}
	}
	turnos, err := s.repo.ListarPorEmpleadoYFecha(ctx, q.EmpleadoID, fecha)
	if err != nil {
		return false, err
	}
	return HayConflicto(turnos, q.EmpleadoID, fecha, q.Excluir), nil
}
