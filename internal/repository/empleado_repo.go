package repository

import (
	"context"

	"restaurante/internal/model"

	"gorm.io/gorm"
)

type EmpleadoRepository interface {
	Crear(ctx context.Context, e *model.Empleado) error
	Listar(ctx context.Context) ([]model.Empleado, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Empleado, error)
	ObtenerPorEmail(ctx context.Context, email string) (*model.Empleado, error)
	Actualizar(ctx context.Context, e *model.Empleado) error
	Eliminar(ctx context.Context, id uint) error
}

type empleadoRepo struct{ db *gorm.DB }

func NewEmpleadoRepository(db *gorm.DB) EmpleadoRepository { return &empleadoRepo{db: db} }

func (r *empleadoRepo) Crear(ctx context.Context, e *model.Empleado) error {
	return clasificar(r.db.WithContext(ctx).Create(e).Error)
}

func (r *empleadoRepo) Listar(ctx context.Context) ([]model.Empleado, error) {
	var list []model.Empleado
	err := r.db.WithContext(ctx).Order("id").Find(&list).Error
	return list, err
}

func (r *empleadoRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Empleado, error) {
	var e model.Empleado
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empleadoRepo) ObtenerPorEmail(ctx context.Context, email string) (*model.Empleado, error) {
	var e model.Empleado
	if err := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&e).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *empleadoRepo) Actualizar(ctx context.Context, e *model.Empleado) error {
	return clasificar(r.db.WithContext(ctx).Save(e).Error)
}

// Eliminar detaches the employee's shifts and orders (ON DELETE SET NULL).
func (r *empleadoRepo) Eliminar(ctx context.Context, id uint) error {
	return clasificar(r.db.WithContext(ctx).Delete(&model.Empleado{}, id).Error)
}
