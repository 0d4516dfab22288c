package service_test

import (
	"context"
	"strings"
	"sync"
	"time"

	"restaurante/internal/model"

	"gorm.io/gorm"
)

// ── In-memory Repository Stubs ────────────────────────────────────────────────
//
// Each stub keeps its rows in a map and hands out copies, so a service that
// mutates a loaded entity without saving it leaves the store untouched.

type stubClienteRepo struct {
	rows   map[uint]model.Cliente
	nextID uint
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{rows: make(map[uint]model.Cliente)}
}

func (r *stubClienteRepo) Crear(_ context.Context, c *model.Cliente) error {
	r.nextID++
	c.ID = r.nextID
	r.rows[c.ID] = *c
	return nil
}

func (r *stubClienteRepo) Listar(_ context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.rows))
	for id := uint(1); id <= r.nextID; id++ {
		if c, ok := r.rows[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubClienteRepo) ObtenerPorID(_ context.Context, id uint) (*model.Cliente, error) {
	c, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (r *stubClienteRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Cliente, error) {
	for _, c := range r.rows {
		if c.Nombre == nombre {
			return &c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubClienteRepo) Actualizar(_ context.Context, c *model.Cliente) error {
	r.rows[c.ID] = *c
	return nil
}

func (r *stubClienteRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

type stubEmpleadoRepo struct {
	rows   map[uint]model.Empleado
	nextID uint
}

func newStubEmpleadoRepo() *stubEmpleadoRepo {
	return &stubEmpleadoRepo{rows: make(map[uint]model.Empleado)}
}

func (r *stubEmpleadoRepo) Crear(_ context.Context, e *model.Empleado) error {
	r.nextID++
	e.ID = r.nextID
	r.rows[e.ID] = *e
	return nil
}

func (r *stubEmpleadoRepo) Listar(_ context.Context) ([]model.Empleado, error) {
	out := make([]model.Empleado, 0, len(r.rows))
	for id := uint(1); id <= r.nextID; id++ {
		if e, ok := r.rows[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubEmpleadoRepo) ObtenerPorID(_ context.Context, id uint) (*model.Empleado, error) {
	e, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

func (r *stubEmpleadoRepo) ObtenerPorEmail(_ context.Context, email string) (*model.Empleado, error) {
	for _, e := range r.rows {
		if strings.EqualFold(e.Email, email) {
			return &e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEmpleadoRepo) Actualizar(_ context.Context, e *model.Empleado) error {
	r.rows[e.ID] = *e
	return nil
}

func (r *stubEmpleadoRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

type stubTurnoRepo struct {
	rows   map[uint]model.Turno
	nextID uint
}

func newStubTurnoRepo() *stubTurnoRepo {
	return &stubTurnoRepo{rows: make(map[uint]model.Turno)}
}

func (r *stubTurnoRepo) Crear(_ context.Context, t *model.Turno) error {
	r.nextID++
	t.ID = r.nextID
	r.rows[t.ID] = *t
	return nil
}

func (r *stubTurnoRepo) Listar(_ context.Context) ([]model.Turno, error) {
	out := make([]model.Turno, 0, len(r.rows))
	for id := uint(1); id <= r.nextID; id++ {
		if t, ok := r.rows[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubTurnoRepo) ListarPorEmpleadoYFecha(_ context.Context, empleadoID uint, fecha model.Fecha) ([]model.Turno, error) {
	var out []model.Turno
	for _, t := range r.rows {
		if t.EmpleadoID != nil && *t.EmpleadoID == empleadoID && t.Fecha.Equal(fecha.Time) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *stubTurnoRepo) ObtenerPorID(_ context.Context, id uint) (*model.Turno, error) {
	t, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r *stubTurnoRepo) Actualizar(_ context.Context, t *model.Turno) error {
	r.rows[t.ID] = *t
	return nil
}

func (r *stubTurnoRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

type stubIngredienteRepo struct {
	rows      map[uint]model.Ingrediente
	nextID    uint
	deleteErr error // returned by Eliminar, e.g. repository.ErrIntegridad
}

func newStubIngredienteRepo() *stubIngredienteRepo {
	return &stubIngredienteRepo{rows: make(map[uint]model.Ingrediente)}
}

func (r *stubIngredienteRepo) Crear(_ context.Context, i *model.Ingrediente) error {
	r.nextID++
	i.ID = r.nextID
	r.rows[i.ID] = *i
	return nil
}

func (r *stubIngredienteRepo) Listar(_ context.Context) ([]model.Ingrediente, error) {
	out := make([]model.Ingrediente, 0, len(r.rows))
	for id := uint(1); id <= r.nextID; id++ {
		if i, ok := r.rows[id]; ok {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *stubIngredienteRepo) ObtenerPorID(_ context.Context, id uint) (*model.Ingrediente, error) {
	i, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &i, nil
}

func (r *stubIngredienteRepo) ObtenerPorIDs(_ context.Context, ids []uint) ([]model.Ingrediente, error) {
	var out []model.Ingrediente
	for _, id := range ids {
		if i, ok := r.rows[id]; ok {
			out = append(out, i)
		}
	}
	return out, nil
}

func (r *stubIngredienteRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Ingrediente, error) {
	for _, i := range r.rows {
		if i.Nombre == nombre {
			return &i, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubIngredienteRepo) Actualizar(_ context.Context, i *model.Ingrediente) error {
	r.rows[i.ID] = *i
	return nil
}

func (r *stubIngredienteRepo) Eliminar(_ context.Context, id uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.rows, id)
	return nil
}

type stubPlatoRepo struct {
	rows         map[uint]model.Plato
	nextID       uint
	ingredientes *stubIngredienteRepo
	// duranteListar runs after the rows are read and before Listar returns.
	duranteListar func()
	updateErr     error
}

func newStubPlatoRepo(ing *stubIngredienteRepo) *stubPlatoRepo {
	return &stubPlatoRepo{rows: make(map[uint]model.Plato), ingredientes: ing}
}

func (r *stubPlatoRepo) DB() *gorm.DB { return nil }

func (r *stubPlatoRepo) Crear(_ context.Context, _ *gorm.DB, p *model.Plato) error {
	r.nextID++
	p.ID = r.nextID
	r.rows[p.ID] = *p
	return nil
}

func (r *stubPlatoRepo) Listar(_ context.Context) ([]model.Plato, error) {
	out := make([]model.Plato, 0, len(r.rows))
	for id := uint(1); id <= r.nextID; id++ {
		if p, ok := r.rows[id]; ok {
			out = append(out, p)
		}
	}
	if r.duranteListar != nil {
		hook := r.duranteListar
		r.duranteListar = nil
		hook()
	}
	return out, nil
}

func (r *stubPlatoRepo) ObtenerPorID(_ context.Context, id uint) (*model.Plato, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *stubPlatoRepo) ObtenerPorIDs(_ context.Context, ids []uint) ([]model.Plato, error) {
	var out []model.Plato
	for _, id := range ids {
		if p, ok := r.rows[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPlatoRepo) ObtenerPorNombre(_ context.Context, nombre string) (*model.Plato, error) {
	for _, p := range r.rows {
		if p.Nombre == nombre {
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPlatoRepo) Actualizar(_ context.Context, _ *gorm.DB, p *model.Plato) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.rows[p.ID] = *p
	return nil
}

func (r *stubPlatoRepo) ReemplazarIngredientes(_ context.Context, _ *gorm.DB, platoID uint, ids []uint) error {
	p := r.rows[platoID]
	p.Ingredientes = nil
	for _, id := range ids {
		p.Ingredientes = append(p.Ingredientes, r.ingredientes.rows[id])
	}
	r.rows[platoID] = p
	return nil
}

func (r *stubPlatoRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

type stubPedidoRepo struct {
	rows   map[uint]model.Pedido
	nextID uint
	platos *stubPlatoRepo
}

func newStubPedidoRepo(platos *stubPlatoRepo) *stubPedidoRepo {
	return &stubPedidoRepo{rows: make(map[uint]model.Pedido), platos: platos}
}

func (r *stubPedidoRepo) DB() *gorm.DB { return nil }

func (r *stubPedidoRepo) Crear(_ context.Context, _ *gorm.DB, p *model.Pedido) error {
	r.nextID++
	p.ID = r.nextID
	r.rows[p.ID] = *p
	return nil
}

func (r *stubPedidoRepo) Listar(_ context.Context) ([]model.Pedido, error) {
	out := make([]model.Pedido, 0, len(r.rows))
	for id := uint(1); id <= r.nextID; id++ {
		if p, ok := r.rows[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPedidoRepo) ObtenerPorID(_ context.Context, id uint) (*model.Pedido, error) {
	p, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *stubPedidoRepo) Actualizar(_ context.Context, _ *gorm.DB, p *model.Pedido) error {
	r.rows[p.ID] = *p
	return nil
}

func (r *stubPedidoRepo) ReemplazarPlatos(_ context.Context, _ *gorm.DB, pedidoID uint, ids []uint) error {
	p := r.rows[pedidoID]
	p.Platos = nil
	for _, id := range ids {
		p.Platos = append(p.Platos, r.platos.rows[id])
	}
	r.rows[pedidoID] = p
	return nil
}

func (r *stubPedidoRepo) Eliminar(_ context.Context, id uint) error {
	delete(r.rows, id)
	return nil
}

// ── Cache Stub ────────────────────────────────────────────────────────────────

type stubCache struct {
	mu      sync.Mutex
	data    map[string][]byte
	deletes int
}

func newStubCache() *stubCache { return &stubCache{data: make(map[string][]byte)} }

func (c *stubCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

func (c *stubCache) Set(_ context.Context, key string, val []byte, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = val
}

func (c *stubCache) Delete(_ context.Context, keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
	}
	c.deletes++
}

func ptr[T any](v T) *T { return &v }
