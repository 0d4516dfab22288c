package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurante/internal/dto"
	"restaurante/internal/handler"
	"restaurante/internal/middleware"
	"restaurante/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Fake Services ─────────────────────────────────────────────────────────────

type fakeClienteService struct {
	rows   map[uint]dto.ClienteResponse
	nextID uint
	err    error // forced failure for every call when set
}

func newFakeClienteService() *fakeClienteService {
	return &fakeClienteService{rows: make(map[uint]dto.ClienteResponse)}
}

func (s *fakeClienteService) Crear(_ context.Context, req dto.CrearClienteRequest) (dto.ClienteResponse, error) {
	if s.err != nil {
		return dto.ClienteResponse{}, s.err
	}
	for _, c := range s.rows {
		if c.Nombre == req.Nombre {
			return dto.ClienteResponse{}, &service.Error{Kind: service.ErrConflicto, Message: "El nombre del cliente ya está en uso."}
		}
	}
	s.nextID++
	estado := req.Estado
	if estado == "" {
		estado = "disponible"
	}
	resp := dto.ClienteResponse{ClienteID: s.nextID, Nombre: req.Nombre, Estado: estado}
	s.rows[s.nextID] = resp
	return resp, nil
}

func (s *fakeClienteService) Listar(_ context.Context) ([]dto.ClienteResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]dto.ClienteResponse, 0, len(s.rows))
	for _, c := range s.rows {
		out = append(out, c)
	}
	return out, nil
}

func (s *fakeClienteService) ObtenerPorID(_ context.Context, id uint) (dto.ClienteResponse, error) {
	c, ok := s.rows[id]
	if !ok {
		return dto.ClienteResponse{}, &service.Error{Kind: service.ErrNoEncontrado, Message: "Cliente no encontrado"}
	}
	return c, nil
}

func (s *fakeClienteService) Actualizar(ctx context.Context, id uint, req dto.ActualizarClienteRequest) (dto.ClienteResponse, error) {
	c, err := s.ObtenerPorID(ctx, id)
	if err != nil {
		return c, err
	}
	if req.Nombre != nil {
		c.Nombre = *req.Nombre
	}
	if req.Estado != nil {
		c.Estado = *req.Estado
	}
	s.rows[id] = c
	return c, nil
}

func (s *fakeClienteService) Eliminar(ctx context.Context, id uint) error {
	if _, err := s.ObtenerPorID(ctx, id); err != nil {
		return err
	}
	delete(s.rows, id)
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func clienteRouter(svc service.ClienteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler(true))
	h := handler.NewClienteHandler(svc)
	g := r.Group("/api/cliente")
	g.POST("", h.Crear)
	g.GET("", h.Listar)
	g.GET("/:id", h.ObtenerPorID)
	g.PUT("/:id", h.Actualizar)
	g.DELETE("/:id", h.Eliminar)
	return r
}

func doJSON(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, path, nil)
	} else {
		req, _ = http.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Message string            `json:"message"`
	Errores map[string]string `json:"errores"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

// ── CRUD status codes ─────────────────────────────────────────────────────────

func TestClienteHandler_CreateAndFetch(t *testing.T) {
	r := clienteRouter(newFakeClienteService())

	w := doJSON(r, http.MethodPost, "/api/cliente", `{"nombre":"Mesa 1"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created dto.ClienteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(1), created.ClienteID)
	assert.Equal(t, "disponible", created.Estado)

	w = doJSON(r, http.MethodGet, "/api/cliente/1", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/api/cliente", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"clienteID":1`)
}

func TestClienteHandler_UnknownFieldIsRejected(t *testing.T) {
	r := clienteRouter(newFakeClienteService())

	w := doJSON(r, http.MethodPost, "/api/cliente", `{"nombre":"Mesa 1","mozo":"Pedro"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No se permiten propiedades adicionales.", decodeError(t, w).Message)
}

func TestClienteHandler_ValidationErrorsCarryFields(t *testing.T) {
	r := clienteRouter(newFakeClienteService())

	w := doJSON(r, http.MethodPost, "/api/cliente", `{"nombre":"Mesa 1","estado":"ocupado"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.NotEmpty(t, body.Message)
	assert.Contains(t, body.Errores, "estado")
}

func TestClienteHandler_EmptyUpdateIsRejected(t *testing.T) {
	svc := newFakeClienteService()
	r := clienteRouter(svc)
	doJSON(r, http.MethodPost, "/api/cliente", `{"nombre":"Mesa 1"}`)

	w := doJSON(r, http.MethodPut, "/api/cliente/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "al menos un campo")
}

func TestClienteHandler_MalformedJSON(t *testing.T) {
	r := clienteRouter(newFakeClienteService())
	w := doJSON(r, http.MethodPost, "/api/cliente", `{"nombre":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClienteHandler_BadIDs(t *testing.T) {
	r := clienteRouter(newFakeClienteService())

	paths := []string{
		"/api/cliente/abc",
		"/api/cliente/0",
		"/api/cliente/-3",
		"/api/cliente/2147483648",
		"/api/cliente/4294967295",
	}
	for _, path := range paths {
		w := doJSON(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
		assert.Equal(t, "ID inválido", decodeError(t, w).Message)
	}

	w := doJSON(r, http.MethodDelete, "/api/cliente/2147483648", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// the largest SERIAL key still reaches the service
	w = doJSON(r, http.MethodGet, "/api/cliente/2147483647", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClienteHandler_NotFoundAndConflict(t *testing.T) {
	r := clienteRouter(newFakeClienteService())

	w := doJSON(r, http.MethodGet, "/api/cliente/9", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cliente no encontrado", decodeError(t, w).Message)

	w = doJSON(r, http.MethodPut, "/api/cliente/9", `{"nombre":"Mesa 9"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	doJSON(r, http.MethodPost, "/api/cliente", `{"nombre":"Mesa 1"}`)
	w = doJSON(r, http.MethodPost, "/api/cliente", `{"nombre":"Mesa 1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "El nombre del cliente ya está en uso.", decodeError(t, w).Message)
}

func TestClienteHandler_DeleteReturnsNoContent(t *testing.T) {
	r := clienteRouter(newFakeClienteService())
	doJSON(r, http.MethodPost, "/api/cliente", `{"nombre":"Mesa 1"}`)

	w := doJSON(r, http.MethodDelete, "/api/cliente/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(r, http.MethodDelete, "/api/cliente/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClienteHandler_UnexpectedErrorIs500(t *testing.T) {
	svc := newFakeClienteService()
	svc.err = errors.New("connection refused")
	r := clienteRouter(svc)

	w := doJSON(r, http.MethodGet, "/api/cliente", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "connection refused", decodeError(t, w).Message)
}

func TestClienteHandler_IntegrityErrorIs400(t *testing.T) {
	svc := newFakeClienteService()
	svc.err = &service.Error{Kind: service.ErrIntegridad, Message: service.MsgIntegridad}
	r := clienteRouter(svc)

	w := doJSON(r, http.MethodPost, "/api/cliente", `{"nombre":"Mesa 1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, service.MsgIntegridad, decodeError(t, w).Message)
}
