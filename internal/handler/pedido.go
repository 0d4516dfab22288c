package handler

import (
	"fmt"
	"net/http"

	"restaurante/internal/dto"
	"restaurante/internal/service"
	"restaurante/internal/validation"

	"github.com/gin-gonic/gin"
)

type PedidoHandler struct {
	svc      service.PedidoService
	reportes service.ReporteService
}

func NewPedidoHandler(svc service.PedidoService, reportes service.ReporteService) *PedidoHandler {
	return &PedidoHandler{svc: svc, reportes: reportes}
}

// Crear POST /api/pedido
func (h *PedidoHandler) Crear(c *gin.Context) {
	var req dto.CrearPedidoRequest
	if !bindAndValidate(c, &req, validation.CrearPedido) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /api/pedido
func (h *PedidoHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/pedido/:id
func (h *PedidoHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar PUT /api/pedido/:id
func (h *PedidoHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarPedidoRequest
	if !bindAndValidate(c, &req, validation.ActualizarPedido) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /api/pedido/:id
func (h *PedidoHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Eliminar(c.Request.Context(), id); err != nil {
		responderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AgregarPlato POST /api/pedido/:id/platos/:platoID
func (h *PedidoHandler) AgregarPlato(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	platoID, ok := parseID(c, "platoID")
	if !ok {
		return
	}
	resp, err := h.svc.AgregarPlato(c.Request.Context(), id, platoID)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// QuitarPlato DELETE /api/pedido/:id/platos/:platoID
func (h *PedidoHandler) QuitarPlato(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	platoID, ok := parseID(c, "platoID")
	if !ok {
		return
	}
	resp, err := h.svc.QuitarPlato(c.Request.Context(), id, platoID)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Exportar GET /api/pedido/export
func (h *PedidoHandler) Exportar(c *gin.Context) {
	data, err := h.reportes.ExportarPedidos(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="pedidos.xlsx"`)
	c.Data(http.StatusOK, mimeXLSX, data)
}

// Ticket GET /api/pedido/:id/ticket
func (h *PedidoHandler) Ticket(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	data, err := h.reportes.TicketPedido(c.Request.Context(), id)
	if err != nil {
		responderError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="pedido_%d.pdf"`, id))
	c.Data(http.StatusOK, "application/pdf", data)
}
