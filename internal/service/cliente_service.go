package service

import (
	"context"
	"errors"

	"restaurante/internal/dto"
	"restaurante/internal/model"
	"restaurante/internal/repository"

	"gorm.io/gorm"
)

const msgNombreClienteEnUso = "El nombre del cliente ya está en uso."

// ClienteService manages tables (clientes) and their occupancy state.
type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) (dto.ClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (dto.ClienteResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func mapCliente(c model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{ClienteID: c.ID, Nombre: c.Nombre, Estado: c.Estado}
}

// nombreTomado reports whether nombre belongs to a client other than propioID.
func (s *clienteService) nombreTomado(ctx context.Context, nombre string, propioID uint) (bool, error) {
	existing, err := s.repo.ObtenerPorNombre(ctx, nombre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != propioID, nil
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) (dto.ClienteResponse, error) {
	tomado, err := s.nombreTomado(ctx, req.Nombre, 0)
	if err != nil {
		return dto.ClienteResponse{}, err
	}
	if tomado {
		return dto.ClienteResponse{}, conflicto(msgNombreClienteEnUso)
	}

	c := &model.Cliente{Nombre: req.Nombre, Estado: model.ClienteDisponible}
	if req.Estado != "" {
		c.Estado = req.Estado
	}
	if err := s.repo.Crear(ctx, c); err != nil {
		return dto.ClienteResponse{}, traducir(err, "Cliente")
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		result = append(result, mapCliente(c))
	}
	return result, nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, id uint) (dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ClienteResponse{}, traducir(err, "Cliente")
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (dto.ClienteResponse, error) {
	c, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.ClienteResponse{}, traducir(err, "Cliente")
	}

	if req.Nombre != nil {
		if *req.Nombre != c.Nombre {
			tomado, err := s.nombreTomado(ctx, *req.Nombre, id)
			if err != nil {
				return dto.ClienteResponse{}, err
			}
			if tomado {
				return dto.ClienteResponse{}, conflicto(msgNombreClienteEnUso)
			}
		}
		c.Nombre = *req.Nombre
	}
	if req.Estado != nil {
		c.Estado = *req.Estado
	}

	if err := s.repo.Actualizar(ctx, c); err != nil {
		return dto.ClienteResponse{}, traducir(err, "Cliente")
	}
	return mapCliente(*c), nil
}

func (s *clienteService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return traducir(err, "Cliente")
	}
	return traducir(s.repo.Eliminar(ctx, id), "Cliente")
}
