package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"restaurante/internal/apierror"
	"restaurante/internal/service"
	"restaurante/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const msgPropiedadesAdicionales = "No se permiten propiedades adicionales."

func init() {
	// Request bodies with fields the DTO does not declare are rejected.
	binding.EnableDecoderDisallowUnknownFields = true
}

// bindAndValidate decodes the JSON body into req and runs validar on it.
// Returns false and writes the 400 response if either step fails; the
// caller should return immediately without writing another response.
func bindAndValidate[T any](c *gin.Context, req *T, validar func(T) validation.Resultado[T]) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if strings.Contains(err.Error(), "unknown field") {
			c.JSON(http.StatusBadRequest, apierror.New(msgPropiedadesAdicionales))
			return false
		}
		c.JSON(http.StatusBadRequest, apierror.New("JSON inválido: "+err.Error()))
		return false
	}
	res := validar(*req)
	if !res.Ok() {
		responderValidacion(c, res.Errores)
		return false
	}
	*req = res.Valor
	return true
}

func responderValidacion(c *gin.Context, errs validation.Errores) {
	c.JSON(http.StatusBadRequest, apierror.NewValidation(errs.Error(), errs))
}

// parseID reads a positive integer path parameter, writing 400 otherwise.
// Keys are SERIAL columns, so anything past int4 is rejected here instead of
// reaching the driver.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 31)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID inválido"))
		return 0, false
	}
	return uint(id), true
}

// responderError maps service errors to status codes. Unknown errors are
// attached to the context and rendered as 500 by middleware.ErrorHandler.
func responderError(c *gin.Context, err error) {
	var errs validation.Errores
	if errors.As(err, &errs) {
		responderValidacion(c, errs)
		return
	}

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		status := http.StatusBadRequest
		switch {
		case errors.Is(svcErr, service.ErrNoEncontrado):
			status = http.StatusNotFound
		case errors.Is(svcErr, service.ErrCredenciales):
			status = http.StatusUnauthorized
		}
		c.JSON(status, apierror.New(svcErr.Message))
		return
	}

	_ = c.Error(err)
}
