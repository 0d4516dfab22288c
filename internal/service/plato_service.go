package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"restaurante/internal/dto"
	"restaurante/internal/model"
	"restaurante/internal/repository"
	"restaurante/internal/validation"

	"gorm.io/gorm"
)

const msgNombrePlatoEnUso = "El nombre del plato ya está en uso."

// PlatoService manages the menu (/api/menu). The dish list is cached and
// dropped from the cache on every dish or ingredient write.
type PlatoService interface {
	Crear(ctx context.Context, req dto.CrearPlatoRequest) (dto.PlatoResponse, error)
	Listar(ctx context.Context) ([]dto.PlatoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (dto.PlatoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarPlatoRequest) (dto.PlatoResponse, error)
	Eliminar(ctx context.Context, id uint) error
}

type platoService struct {
	repo         repository.PlatoRepository
	ingredientes repository.IngredienteRepository
	menu         *CacheMenu
}

func NewPlatoService(repo repository.PlatoRepository, ingredientes repository.IngredienteRepository, menu *CacheMenu) PlatoService {
	return &platoService{repo: repo, ingredientes: ingredientes, menu: menuOrNoop(menu)}
}

func mapPlato(p model.Plato) dto.PlatoResponse {
	resp := dto.PlatoResponse{
		PlatoID:        p.ID,
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		Precio:         p.Precio,
		Disponibilidad: p.Disponibilidad,
		IngredienteID:  make([]uint, 0, len(p.Ingredientes)),
		Ingredientes:   make([]dto.IngredienteResponse, 0, len(p.Ingredientes)),
	}
	for _, i := range p.Ingredientes {
		resp.IngredienteID = append(resp.IngredienteID, i.ID)
		resp.Ingredientes = append(resp.Ingredientes, mapIngrediente(i))
	}
	return resp
}

func mapPlatoResumen(p model.Plato) dto.PlatoResumen {
	return dto.PlatoResumen{PlatoID: p.ID, Nombre: p.Nombre, Precio: p.Precio}
}

// faltantes lists requested ids that were not found.
func faltantes(pedidos []uint, encontrados map[uint]bool) []string {
	var out []string
	for _, id := range pedidos {
		if !encontrados[id] {
			out = append(out, fmt.Sprint(id))
		}
	}
	return out
}

// verificarIngredientes fails with a field error when any id does not exist.
func (s *platoService) verificarIngredientes(ctx context.Context, ids []uint) error {
	found, err := s.ingredientes.ObtenerPorIDs(ctx, ids)
	if err != nil {
		return err
	}
	set := make(map[uint]bool, len(found))
	for _, i := range found {
		set[i.ID] = true
	}
	if miss := faltantes(ids, set); len(miss) > 0 {
		return validation.Errores{"ingredienteID": "No existen los ingredientes: " + strings.Join(miss, ", ") + "."}
	}
	return nil
}

func (s *platoService) nombreTomado(ctx context.Context, nombre string, propioID uint) (bool, error) {
	existing, err := s.repo.ObtenerPorNombre(ctx, nombre)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return existing.ID != propioID, nil
}

func (s *platoService) Crear(ctx context.Context, req dto.CrearPlatoRequest) (dto.PlatoResponse, error) {
	tomado, err := s.nombreTomado(ctx, req.Nombre, 0)
	if err != nil {
		return dto.PlatoResponse{}, err
	}
	if tomado {
		return dto.PlatoResponse{}, conflicto(msgNombrePlatoEnUso)
	}
	ids := unicos(req.IngredienteID)
	if err := s.verificarIngredientes(ctx, ids); err != nil {
		return dto.PlatoResponse{}, err
	}

	p := &model.Plato{
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		Precio:         req.Precio,
		Disponibilidad: true,
	}
	if req.Disponibilidad != nil {
		p.Disponibilidad = *req.Disponibilidad
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Crear(ctx, tx, p); err != nil {
			return err
		}
		return s.repo.ReemplazarIngredientes(ctx, tx, p.ID, ids)
	})
	if txErr != nil {
		return dto.PlatoResponse{}, traducir(txErr, "Plato")
	}
	s.menu.invalidar(ctx)
	return s.ObtenerPorID(ctx, p.ID)
}

func (s *platoService) Listar(ctx context.Context) ([]dto.PlatoResponse, error) {
	if cached, ok := s.menu.leer(ctx); ok {
		return cached, nil
	}
	gen := s.menu.generacion()
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PlatoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPlato(p))
	}
	s.menu.guardar(ctx, gen, result)
	return result, nil
}

func (s *platoService) ObtenerPorID(ctx context.Context, id uint) (dto.PlatoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PlatoResponse{}, traducir(err, "Plato")
	}
	return mapPlato(*p), nil
}

// Actualizar merges scalar fields and, when IngredienteID is present,
// replaces the ingredient set in the same transaction.
func (s *platoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarPlatoRequest) (dto.PlatoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PlatoResponse{}, traducir(err, "Plato")
	}

	if req.Nombre != nil {
		if *req.Nombre != p.Nombre {
			tomado, err := s.nombreTomado(ctx, *req.Nombre, id)
			if err != nil {
				return dto.PlatoResponse{}, err
			}
			if tomado {
				return dto.PlatoResponse{}, conflicto(msgNombrePlatoEnUso)
			}
		}
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = *req.Descripcion
	}
	if req.Precio != nil {
		p.Precio = *req.Precio
	}
	if req.Disponibilidad != nil {
		p.Disponibilidad = *req.Disponibilidad
	}

	var ids []uint
	if req.IngredienteID != nil {
		ids = unicos(*req.IngredienteID)
		if err := s.verificarIngredientes(ctx, ids); err != nil {
			return dto.PlatoResponse{}, err
		}
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Actualizar(ctx, tx, p); err != nil {
			return err
		}
		if req.IngredienteID == nil {
			return nil
		}
		return s.repo.ReemplazarIngredientes(ctx, tx, id, ids)
	})
	if txErr != nil {
		return dto.PlatoResponse{}, traducir(txErr, "Plato")
	}
	s.menu.invalidar(ctx)
	return s.ObtenerPorID(ctx, id)
}

func (s *platoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return traducir(err, "Plato")
	}
	if err := s.repo.Eliminar(ctx, id); err != nil {
		return traducir(err, "Plato")
	}
	s.menu.invalidar(ctx)
	return nil
}
