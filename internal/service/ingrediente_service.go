package service

import (
	"context"
	"errors"

	"restaurante/internal/dto"
	"restaurante/internal/model"
	"restaurante/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const msgNombreIngredienteEnUso = "El nombre del ingrediente ya está en uso."

type IngredienteService interface {
	Crear(ctx context.Context, req dto.CrearIngredienteRequest) (dto.IngredienteResponse, error)
	Listar(ctx context.Context) ([]dto.IngredienteResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (dto.IngredienteResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarIngredienteRequest) (dto.IngredienteResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type ingredienteService struct {
	repo repository.IngredienteRepository
	menu *CacheMenu
}

// NewIngredienteService wires the menu cache because dish responses embed
// their ingredients.
func NewIngredienteService(repo repository.IngredienteRepository, menu *CacheMenu) IngredienteService {
	return &ingredienteService{repo: repo, menu: menuOrNoop(menu)}
}

func mapIngrediente(i model.Ingrediente) dto.IngredienteResponse {
	return dto.IngredienteResponse{
		IngredienteID: i.ID,
		Nombre:        i.Nombre,
		Cantidad:      i.Cantidad,
		UnidadMedida:  i.UnidadMedida,
	}
}

func (s *ingredienteService) nombreTomado(ctx context.Context, nombre string, propioID uint) (bool, error) {
	existing, err := s.repo.ObtenerPorNombre(ctx, nombre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != propioID, nil
}

func (s *ingredienteService) Crear(ctx context.Context, req dto.CrearIngredienteRequest) (dto.IngredienteResponse, error) {
	tomado, err := s.nombreTomado(ctx, req.Nombre, 0)
	if err != nil {
		return dto.IngredienteResponse{}, err
	}
	if tomado {
		return dto.IngredienteResponse{}, conflicto(msgNombreIngredienteEnUso)
	}

	i := &model.Ingrediente{Nombre: req.Nombre, Cantidad: decimal.Zero, UnidadMedida: "unidad"}
	if req.Cantidad != nil {
		i.Cantidad = *req.Cantidad
	}
	if req.UnidadMedida != nil {
		i.UnidadMedida = *req.UnidadMedida
	}
	if err := s.repo.Crear(ctx, i); err != nil {
		return dto.IngredienteResponse{}, traducir(err, "Ingrediente")
	}
	return mapIngrediente(*i), nil
}

func (s *ingredienteService) Listar(ctx context.Context) ([]dto.IngredienteResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.IngredienteResponse, 0, len(list))
	for _, i := range list {
		result = append(result, mapIngrediente(i))
	}
	return result, nil
}

func (s *ingredienteService) ObtenerPorID(ctx context.Context, id uint) (dto.IngredienteResponse, error) {
	i, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.IngredienteResponse{}, traducir(err, "Ingrediente")
	}
	return mapIngrediente(*i), nil
}

func (s *ingredienteService) Actualizar(ctx context.Context, id uint, req dto.ActualizarIngredienteRequest) (dto.IngredienteResponse, error) {
	i, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.IngredienteResponse{}, traducir(err, "Ingrediente")
	}

	if req.Nombre != nil {
		if *req.Nombre != i.Nombre {
			tomado, err := s.nombreTomado(ctx, *req.Nombre, id)
			if err != nil {
				return dto.IngredienteResponse{}, err
			}
			if tomado {
				return dto.IngredienteResponse{}, conflicto(msgNombreIngredienteEnUso)
			}
		}
		i.Nombre = *req.Nombre
	}
	if req.Cantidad != nil {
		i.Cantidad = *req.Cantidad
	}
	if req.UnidadMedida != nil {
		i.UnidadMedida = *req.UnidadMedida
	}

	if err := s.repo.Actualizar(ctx, i); err != nil {
		return dto.IngredienteResponse{}, traducir(err, "Ingrediente")
	}
	s.menu.invalidar(ctx)
	return mapIngrediente(*i), nil
}

// Eliminar fails with ErrIntegridad while a dish still uses the ingredient.
func (s *ingredienteService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return traducir(err, "Ingrediente")
	}
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return traducir(err, "Ingrediente")
	}
	s.menu.invalidar(ctx)
	return nil
}
