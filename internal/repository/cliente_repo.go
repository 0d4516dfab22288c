package repository

import (
	"context"

	"restaurante/internal/model"

	"gorm.io/gorm"
)

type ClienteRepository interface {
	Crear(ctx context.Context, c *model.Cliente) error
	Listar(ctx context.Context) ([]model.Cliente, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Cliente, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Cliente, error)
	Actualizar(ctx context.Context, c *model.Cliente) error
	Eliminar(ctx context.Context, id uint) error
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Crear(ctx context.Context, c *model.Cliente) error {
	return clasificar(r.db.WithContext(ctx).Create(c).Error)
}

func (r *clienteRepo) Listar(ctx context.Context) ([]model.Cliente, error) {
	var list []model.Cliente
	err := r.db.WithContext(ctx).Order("id").Find(&list).Error
	return list, err
}

func (r *clienteRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Cliente, error) {
	var c model.Cliente
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *clienteRepo) Actualizar(ctx context.Context, c *model.Cliente) error {
	return clasificar(r.db.WithContext(ctx).Save(c).Error)
}

// Eliminar relies on ON DELETE SET NULL to detach the client's orders.
func (r *clienteRepo) Eliminar(ctx context.Context, id uint) error {
	return clasificar(r.db.WithContext(ctx).Delete(&model.Cliente{}, id).Error)
}
