package repository

import (
	"context"

	"restaurante/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TurnoRepository interface {
	Crear(ctx context.Context, t *model.Turno) error
	Listar(ctx context.Context) ([]model.Turno, error)
	ListarPorEmpleadoYFecha(ctx context.Context, empleadoID uint, fecha model.Fecha) ([]model.Turno, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Turno, error)
	Actualizar(ctx context.Context, t *model.Turno) error
	Eliminar(ctx context.Context, id uint) error
}

type turnoRepo struct{ db *gorm.DB }

func NewTurnoRepository(db *gorm.DB) TurnoRepository { return &turnoRepo{db: db} }

func (r *turnoRepo) Crear(ctx context.Context, t *model.Turno) error {
	return clasificar(r.db.WithContext(ctx).Omit(clause.Associations).Create(t).Error)
}

func (r *turnoRepo) Listar(ctx context.Context) ([]model.Turno, error) {
	var list []model.Turno
	err := r.db.WithContext(ctx).Preload("Empleado").Order("id").Find(&list).Error
	return list, err
}

func (r *turnoRepo) ListarPorEmpleadoYFecha(ctx context.Context, empleadoID uint, fecha model.Fecha) ([]model.Turno, error) {
	var list []model.Turno
	err := r.db.WithContext(ctx).
		Where("empleado_id = ? AND fecha = ?", empleadoID, fecha).
		Order("id").Find(&list).Error
	return list, err
}

func (r *turnoRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Turno, error) {
	var t model.Turno
	if err := r.db.WithContext(ctx).Preload("Empleado").First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// Actualizar never writes through the preloaded Empleado.
func (r *turnoRepo) Actualizar(ctx context.Context, t *model.Turno) error {
	return clasificar(r.db.WithContext(ctx).Omit(clause.Associations).Save(t).Error)
}

func (r *turnoRepo) Eliminar(ctx context.Context, id uint) error {
	return clasificar(r.db.WithContext(ctx).Delete(&model.Turno{}, id).Error)
}
