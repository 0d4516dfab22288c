package repository

import (
	"context"

	"restaurante/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlatoRepository interface {
	Crear(ctx context.Context, tx *gorm.DB, p *model.Plato) error
	Listar(ctx context.Context) ([]model.Plato, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Plato, error)
	ObtenerPorIDs(ctx context.Context, ids []uint) ([]model.Plato, error)
	ObtenerPorNombre(ctx context.Context, nombre string) (*model.Plato, error)
	Actualizar(ctx context.Context, tx *gorm.DB, p *model.Plato) error
	ReemplazarIngredientes(ctx context.Context, tx *gorm.DB, platoID uint, ingredienteIDs []uint) error
	Eliminar(ctx context.Context, id uint) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type platoRepo struct{ db *gorm.DB }

func NewPlatoRepository(db *gorm.DB) PlatoRepository { return &platoRepo{db: db} }

func (r *platoRepo) DB() *gorm.DB { return r.db }

func ordenIngredientes(db *gorm.DB) *gorm.DB { return db.Order("ingredientes.id") }

func (r *platoRepo) Crear(ctx context.Context, tx *gorm.DB, p *model.Plato) error {
	return clasificar(conn(r.db, tx).WithContext(ctx).Omit(clause.Associations).Create(p).Error)
}

func (r *platoRepo) Listar(ctx context.Context) ([]model.Plato, error) {
	var list []model.Plato
	err := r.db.WithContext(ctx).Preload("Ingredientes", ordenIngredientes).Order("id").Find(&list).Error
	return list, err
}

func (r *platoRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Plato, error) {
	var p model.Plato
	if err := r.db.WithContext(ctx).Preload("Ingredientes", ordenIngredientes).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *platoRepo) ObtenerPorIDs(ctx context.Context, ids []uint) ([]model.Plato, error) {
	var list []model.Plato
	if len(ids) == 0 {
		return list, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Order("id").Find(&list).Error
	return list, err
}

func (r *platoRepo) ObtenerPorNombre(ctx context.Context, nombre string) (*model.Plato, error) {
	var p model.Plato
	if err := r.db.WithContext(ctx).Where("nombre = ?", nombre).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *platoRepo) Actualizar(ctx context.Context, tx *gorm.DB, p *model.Plato) error {
	return clasificar(conn(r.db, tx).WithContext(ctx).Omit(clause.Associations).Save(p).Error)
}

// ReemplazarIngredientes rewrites the plato_ingredientes rows for one dish.
func (r *platoRepo) ReemplazarIngredientes(ctx context.Context, tx *gorm.DB, platoID uint, ingredienteIDs []uint) error {
	db := conn(r.db, tx).WithContext(ctx)
	if err := db.Where("plato_id = ?", platoID).Delete(&model.PlatoIngrediente{}).Error; err != nil {
		return clasificar(err)
	}
	if len(ingredienteIDs) == 0 {
		return nil
	}
	rows := make([]model.PlatoIngrediente, 0, len(ingredienteIDs))
	for _, id := range ingredienteIDs {
		rows = append(rows, model.PlatoIngrediente{PlatoID: platoID, IngredienteID: id})
	}
	return clasificar(db.Create(&rows).Error)
}

// Eliminar cascades to plato_ingredientes and pedido_platos.
func (r *platoRepo) Eliminar(ctx context.Context, id uint) error {
	return clasificar(r.db.WithContext(ctx).Delete(&model.Plato{}, id).Error)
}
