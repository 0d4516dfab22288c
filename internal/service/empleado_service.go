package service

import (
	"context"
	"errors"
	"strings"

	"restaurante/internal/dto"
	"restaurante/internal/model"
	"restaurante/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	bcryptCost         = 12
	msgEmailEnUso      = "El correo electrónico ya está en uso."
	msgPasswordErronea = "La contraseña actual es incorrecta."
)

type EmpleadoService interface {
	Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (dto.EmpleadoResponse, error)
	Listar(ctx context.Context) ([]dto.EmpleadoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (dto.EmpleadoResponse, error)
	Buscar(ctx context.Context, q dto.BuscarEmpleadoQuery) (dto.EmpleadoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarEmpleadoRequest) (dto.EmpleadoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type empleadoService struct {
	repo repository.EmpleadoRepository
}

func NewEmpleadoService(repo repository.EmpleadoRepository) EmpleadoService {
	return &empleadoService{repo: repo}
}

func mapEmpleado(e model.Empleado) dto.EmpleadoResponse {
	return dto.EmpleadoResponse{
		EmpleadoID: e.ID,
		Nombre:     e.Nombre,
		Email:      e.Email,
		Rol:        e.Rol,
		Contacto:   e.Contacto,
	}
}

// HashPassword returns the bcrypt hash stored for employee passwords.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *empleadoService) emailTomado(ctx context.Context, email string, propioID uint) (bool, error) {
	existing, err := s.repo.ObtenerPorEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != propioID, nil
}

func (s *empleadoService) Crear(ctx context.Context, req dto.CrearEmpleadoRequest) (dto.EmpleadoResponse, error) {
	email := strings.ToLower(req.Email)
	tomado, err := s.emailTomado(ctx, email, 0)
	if err != nil {
		return dto.EmpleadoResponse{}, err
	}
	if tomado {
		return dto.EmpleadoResponse{}, conflicto(msgEmailEnUso)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return dto.EmpleadoResponse{}, err
	}
	e := &model.Empleado{
		Nombre:       req.Nombre,
		Email:        email,
		PasswordHash: hash,
		Rol:          req.Rol,
		Contacto:     req.Contacto,
	}
	if err := s.repo.Crear(ctx, e); err != nil {
		return dto.EmpleadoResponse{}, traducir(err, "Empleado")
	}
	return mapEmpleado(*e), nil
}

func (s *empleadoService) Listar(ctx context.Context) ([]dto.EmpleadoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.EmpleadoResponse, 0, len(list))
	for _, e := range list {
		result = append(result, mapEmpleado(e))
	}
	return result, nil
}

func (s *empleadoService) ObtenerPorID(ctx context.Context, id uint) (dto.EmpleadoResponse, error) {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.EmpleadoResponse{}, traducir(err, "Empleado")
	}
	return mapEmpleado(*e), nil
}

// Buscar looks up by id when given, otherwise by email.
func (s *empleadoService) Buscar(ctx context.Context, q dto.BuscarEmpleadoQuery) (dto.EmpleadoResponse, error) {
	var (
		e   *model.Empleado
		err error
	)
	switch {
	case q.EmpleadoID != nil:
		e, err = s.repo.ObtenerPorID(ctx, uint(*q.EmpleadoID))
	case q.Email != nil:
		e, err = s.repo.ObtenerPorEmail(ctx, *q.Email)
	default:
		return dto.EmpleadoResponse{}, invalido("Debes proporcionar empleadoID o email.")
	}
	if err != nil {
		return dto.EmpleadoResponse{}, traducir(err, "Empleado")
	}
	if q.EmpleadoID != nil && q.Email != nil && !strings.EqualFold(e.Email, *q.Email) {
		return dto.EmpleadoResponse{}, noEncontrado("Empleado")
	}
	return mapEmpleado(*e), nil
}

// Actualizar merges the payload. NewPassword needs Password to match the
// stored hash; Password alone resets it.
func (s *empleadoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarEmpleadoRequest) (dto.EmpleadoResponse, error) {
	e, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.EmpleadoResponse{}, traducir(err, "Empleado")
	}

	if req.Email != nil {
		email := strings.ToLower(*req.Email)
		if email != e.Email {
			tomado, err := s.emailTomado(ctx, email, id)
			if err != nil {
				return dto.EmpleadoResponse{}, err
			}
			if tomado {
				return dto.EmpleadoResponse{}, conflicto(msgEmailEnUso)
			}
		}
		e.Email = email
	}
	if req.Nombre != nil {
		e.Nombre = *req.Nombre
	}
	if req.Rol != nil {
		e.Rol = *req.Rol
	}
	if req.Contacto != nil {
		e.Contacto = req.Contacto
	}

	switch {
	case req.NewPassword != nil:
		if req.Password == nil || bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(*req.Password)) != nil {
			return dto.EmpleadoResponse{}, invalido(msgPasswordErronea)
		}
		if e.PasswordHash, err = HashPassword(*req.NewPassword); err != nil {
			return dto.EmpleadoResponse{}, err
		}
	case req.Password != nil:
		if e.PasswordHash, err = HashPassword(*req.Password); err != nil {
			return dto.EmpleadoResponse{}, err
		}
	}

	if err := s.repo.Actualizar(ctx, e); err != nil {
		return dto.EmpleadoResponse{}, traducir(err, "Empleado")
	}
	return mapEmpleado(*e), nil
}

func (s *empleadoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return traducir(err, "Empleado")
	}
	return traducir(s.repo.Eliminar(ctx, id), "Empleado")
}
