package service

import (
	"context"
	"strings"

	"restaurante/internal/dto"
	"restaurante/internal/model"
	"restaurante/internal/repository"
	"restaurante/internal/validation"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PedidoService manages orders. Total is stored as sent and never derived
// from dish prices, except through AgregarPlato/QuitarPlato.
type PedidoService interface {
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (dto.PedidoResponse, error)
	Listar(ctx context.Context) ([]dto.PedidoResponse, error)
	ObtenerPorID(ctx context.Context, id uint) (dto.PedidoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.ActualizarPedidoRequest) (dto.PedidoResponse, error)
	Eliminar(ctx context.Context, id uint) error
	AgregarPlato(ctx context.Context, pedidoID, platoID uint) (dto.PedidoResponse, error)
	QuitarPlato(ctx context.Context, pedidoID, platoID uint) (dto.PedidoResponse, error)
}

type pedidoService struct {
	repo   repository.PedidoRepository
	platos repository.PlatoRepository
}

func NewPedidoService(repo repository.PedidoRepository, platos repository.PlatoRepository) PedidoService {
	return &pedidoService{repo: repo, platos: platos}
}

func mapPedido(p model.Pedido) dto.PedidoResponse {
	resp := dto.PedidoResponse{
		PedidoID:   p.ID,
		Estado:     p.Estado,
		Total:      p.Total,
		ClienteID:  p.ClienteID,
		EmpleadoID: p.EmpleadoID,
		Liberado:   p.Liberado,
		Platos:     make([]dto.PlatoResumen, 0, len(p.Platos)),
	}
	if p.Fecha != nil && !p.Fecha.IsZero() {
		f := p.Fecha.String()
		resp.Fecha = &f
	}
	for _, pl := range p.Platos {
		resp.Platos = append(resp.Platos, mapPlatoResumen(pl))
	}
	return resp
}

func parseFechaOpcional(raw *string) (*model.Fecha, error) {
	if raw == nil {
		return nil, nil
	}
	f, err := model.ParseFecha(*raw)
	if err != nil {
		return nil, validation.Errores{"fecha": "La fecha debe tener el formato AAAA-MM-DD."}
	}
	return &f, nil
}

func (s *pedidoService) verificarPlatos(ctx context.Context, ids []uint) error {
	found, err := s.platos.ObtenerPorIDs(ctx, ids)
	if err != nil {
		return err
	}
	set := make(map[uint]bool, len(found))
	for _, p := range found {
		set[p.ID] = true
	}
	if miss := faltantes(ids, set); len(miss) > 0 {
		return validation.Errores{"platos": "No existen los platos: " + strings.Join(miss, ", ") + "."}
	}
	return nil
}

func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (dto.PedidoResponse, error) {
	fecha, err := parseFechaOpcional(req.Fecha)
	if err != nil {
		return dto.PedidoResponse{}, err
	}
	ids := unicos(req.Platos)
	if err := s.verificarPlatos(ctx, ids); err != nil {
		return dto.PedidoResponse{}, err
	}

	p := &model.Pedido{
		Fecha:      fecha,
		Estado:     model.PedidoPendiente,
		Total:      req.Total,
		ClienteID:  req.ClienteID,
		EmpleadoID: req.EmpleadoID,
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}
	if req.Liberado != nil {
		p.Liberado = *req.Liberado
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Crear(ctx, tx, p); err != nil {
			return err
		}
		return s.repo.ReemplazarPlatos(ctx, tx, p.ID, ids)
	})
	if txErr != nil {
		return dto.PedidoResponse{}, traducir(txErr, "Pedido")
	}
	return s.ObtenerPorID(ctx, p.ID)
}

func (s *pedidoService) Listar(ctx context.Context) ([]dto.PedidoResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]dto.PedidoResponse, 0, len(list))
	for _, p := range list {
		result = append(result, mapPedido(p))
	}
	return result, nil
}

func (s *pedidoService) ObtenerPorID(ctx context.Context, id uint) (dto.PedidoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PedidoResponse{}, traducir(err, "Pedido")
	}
	return mapPedido(*p), nil
}

// Actualizar merges scalar fields and, when Platos is present, replaces the
// dish association. Both writes share one transaction.
func (s *pedidoService) Actualizar(ctx context.Context, id uint, req dto.ActualizarPedidoRequest) (dto.PedidoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return dto.PedidoResponse{}, traducir(err, "Pedido")
	}

	if req.Fecha != nil {
		if p.Fecha, err = parseFechaOpcional(req.Fecha); err != nil {
			return dto.PedidoResponse{}, err
		}
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}
	if req.Total != nil {
		p.Total = req.Total
	}
	if req.ClienteID != nil {
		p.ClienteID = req.ClienteID
		p.Cliente = nil
	}
	if req.EmpleadoID != nil {
		p.EmpleadoID = req.EmpleadoID
		p.Empleado = nil
	}
	if req.Liberado != nil {
		p.Liberado = *req.Liberado
	}

	var ids []uint
	if req.Platos != nil {
		ids = unicos(*req.Platos)
		if err := s.verificarPlatos(ctx, ids); err != nil {
			return dto.PedidoResponse{}, err
		}
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Actualizar(ctx, tx, p); err != nil {
			return err
		}
		if req.Platos == nil {
			return nil
		}
		return s.repo.ReemplazarPlatos(ctx, tx, id, ids)
	})
	if txErr != nil {
		return dto.PedidoResponse{}, traducir(txErr, "Pedido")
	}
	return s.ObtenerPorID(ctx, id)
}

// Eliminar removes the order; its pedido_platos rows cascade.
func (s *pedidoService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return traducir(err, "Pedido")
	}
	return traducir(s.repo.Eliminar(ctx, id), "Pedido")
}

func (s *pedidoService) AgregarPlato(ctx context.Context, pedidoID, platoID uint) (dto.PedidoResponse, error) {
	return s.editarPlatos(ctx, pedidoID, func(ed *EditorPlatos) error {
		plato, err := s.platos.ObtenerPorID(ctx, platoID)
		if err != nil {
			return traducir(err, "Plato")
		}
		return ed.Agregar(*plato)
	})
}

func (s *pedidoService) QuitarPlato(ctx context.Context, pedidoID, platoID uint) (dto.PedidoResponse, error) {
	return s.editarPlatos(ctx, pedidoID, func(ed *EditorPlatos) error {
		return ed.Quitar(platoID)
	})
}

// editarPlatos loads the order into an EditorPlatos, applies fn and persists
// the new dish set and running total together.
func (s *pedidoService) editarPlatos(ctx context.Context, pedidoID uint, fn func(*EditorPlatos) error) (dto.PedidoResponse, error) {
	p, err := s.repo.ObtenerPorID(ctx, pedidoID)
	if err != nil {
		return dto.PedidoResponse{}, traducir(err, "Pedido")
	}
	total := decimal.Zero
	if p.Total != nil {
		total = *p.Total
	}
	ed := NuevoEditorPlatos(p.Platos, total)
	if err := fn(ed); err != nil {
		return dto.PedidoResponse{}, err
	}

	nuevo := ed.Total()
	p.Total = &nuevo
	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.Actualizar(ctx, tx, p); err != nil {
			return err
		}
		return s.repo.ReemplazarPlatos(ctx, tx, pedidoID, ed.IDs())
	})
	if txErr != nil {
		return dto.PedidoResponse{}, traducir(txErr, "Pedido")
	}
	return s.ObtenerPorID(ctx, pedidoID)
}
