package repository

import (
	"context"

	"restaurante/internal/model"

	"gorm.io/gorm"
)

type IngredienteRepository interface {
	Crear(ctx context.Context, i *model.Ingrediente) error
	Listar(ctx context.Context) ([]model.Ingrediente, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Ingrediente, error)
	ObtenerPorIDs(ctx context.Context, ids []uint) ([]model.Ingrediente, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Ingrediente, error)
	Actualizar(ctx context.Context, i *model.Ingrediente) error
	Eliminar(ctx context.Context, id uint) error
}

type ingredienteRepo struct{ db *gorm.DB }

func NewIngredienteRepository(db *gorm.DB) IngredienteRepository { return &ingredienteRepo{db: db} }

func (r *ingredienteRepo) Crear(ctx context.Context, i *model.Ingrediente) error {
	return clasificar(r.db.WithContext(ctx).Create(i).Error)
}

func (r *ingredienteRepo) Listar(ctx context.Context) ([]model.Ingrediente, error) {
	var list []model.Ingrediente
	err := r.db.WithContext(ctx).Order("id").Find(&list).Error
	return list, err
}

func (r *ingredienteRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Ingrediente, error) {
	var i model.Ingrediente
	if err := r.db.WithContext(ctx).First(&i, id).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *ingredienteRepo) ObtenerPorIDs(ctx context.Context, ids []uint) ([]model.Ingrediente, error) {
	var list []model.Ingrediente
	if len(ids) == 0 {
		return list, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&list).Error
	return list, err
}

func (r *ingredienteRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Ingrediente, error) {
	var i model.Ingrediente
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&i).Error; err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *ingredienteRepo) Actualizar(ctx context.Context, i *model.Ingrediente) error {
	return clasificar(r.db.WithContext(ctx).Save(i).Error)
}

// Eliminar fails with ErrIntegridad while a dish still lists the ingredient.
func (r *ingredienteRepo) Eliminar(ctx context.Context, id uint) error {
	return clasificar(r.db.WithContext(ctx).Delete(&model.Ingrediente{}, id).Error)
}
