package handler

import (
	"net/http"

	"restaurante/internal/dto"
	"restaurante/internal/service"
	"restaurante/internal/validation"

	"github.com/gin-gonic/gin"
)

type EmpleadoHandler struct{ svc service.EmpleadoService }

func NewEmpleadoHandler(svc service.EmpleadoService) *EmpleadoHandler {
	return &EmpleadoHandler{svc: svc}
}

// Crear POST /api/empleado
func (h *EmpleadoHandler) Crear(c *gin.Context) {
	var req dto.CrearEmpleadoRequest
	if !bindAndValidate(c, &req, validation.CrearEmpleado) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar GET /api/empleado
func (h *EmpleadoHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ObtenerPorID GET /api/empleado/:id
func (h *EmpleadoHandler) ObtenerPorID(c *gin.Context) {
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

// Actualizar PUT /api/empleado/:id
func (h *EmpleadoHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.ActualizarEmpleadoRequest
	if !bindAndValidate(c, &req, validation.ActualizarEmpleado) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Eliminar DELETE /api/empleado/:id
func (h *EmpleadoHandler) Eliminar(c *gin.Context) {
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

// Buscar GET /api/empleado/buscar?empleadoID=&email=
func (h *EmpleadoHandler) Buscar(c *gin.Context) {
	res := validation.BuscarEmpleado(c.Request.URL.Query())
	if !res.Ok() {
		responderValidacion(c, res.Errores)
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), res.Valor)
	if err != nil {
		responderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
