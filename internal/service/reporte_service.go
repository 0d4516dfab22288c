package service

import (
	"context"

	"restaurante/internal/infra"
	"restaurante/internal/repository"
)

// ReporteService renders order documents: the .xlsx export and per-order tickets.
type ReporteService interface {
	ExportarPedidos(ctx context.Context) ([]byte, error)
	TicketPedido(ctx context.Context, id uint) ([]byte, error)
}

type reporteService struct {
	pedidos repository.PedidoRepository
}

func NewReporteService(pedidos repository.PedidoRepository) ReporteService {
	return &reporteService{pedidos: pedidos}
}

func (s *reporteService) ExportarPedidos(ctx context.Context) ([]byte, error) {
	list, err := s.pedidos.Listar(ctx)
	if err != nil {
		return nil, err
	}
	return infra.ExportarPedidos(list)
}

func (s *reporteService) TicketPedido(ctx context.Context, id uint) ([]byte, error) {
	p, err := s.pedidos.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, traducir(err, "Pedido")
	}
	return infra.GenerarTicketPedido(p)
}
