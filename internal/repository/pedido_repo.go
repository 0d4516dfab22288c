package repository

import (
	"context"

	"restaurante/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PedidoRepository interface {
	Crear(ctx context.Context, tx *gorm.DB, p *model.Pedido) error
	Listar(ctx context.Context) ([]model.Pedido, error)
	ObtenerPorID(ctx context.Context, id uint) (*model.Pedido, error)
	Actualizar(ctx context.Context, tx *gorm.DB, p *model.Pedido) error
	ReemplazarPlatos(ctx context.Context, tx *gorm.DB, pedidoID uint, platoIDs []uint) error
	Eliminar(ctx context.Context, id uint) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) DB() *gorm.DB { return r.db }

func ordenPlatos(db *gorm.DB) *gorm.DB { return db.Order("platos.id") }

func (r *pedidoRepo) Crear(ctx context.Context, tx *gorm.DB, p *model.Pedido) error {
	return clasificar(conn(r.db, tx).WithContext(ctx).Omit(clause.Associations).Create(p).Error)
}

func (r *pedidoRepo) Listar(ctx context.Context) ([]model.Pedido, error) {
	var list []model.Pedido
	err := r.db.WithContext(ctx).Preload("Platos", ordenPlatos).Order("id").Find(&list).Error
	return list, err
}

func (r *pedidoRepo) ObtenerPorID(ctx context.Context, id uint) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Platos", ordenPlatos).
		Preload("Cliente").
		Preload("Empleado").
		First(&p, id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Actualizar saves scalar columns only; dishes go through ReemplazarPlatos.
func (r *pedidoRepo) Actualizar(ctx context.Context, tx *gorm.DB, p *model.Pedido) error {
	return clasificar(conn(r.db, tx).WithContext(ctx).Omit(clause.Associations).Save(p).Error)
}

// ReemplazarPlatos rewrites the pedido_platos rows for one order.
func (r *pedidoRepo) ReemplazarPlatos(ctx context.Context, tx *gorm.DB, pedidoID uint, platoIDs []uint) error {
	db := conn(r.db, tx).WithContext(ctx)
	if err := db.Where("pedido_id = ?", pedidoID).Delete(&model.PedidoPlato{}).Error; err != nil {
		return clasificar(err)
	}
	if len(platoIDs) == 0 {
		return nil
	}
	rows := make([]model.PedidoPlato, 0, len(platoIDs))
	for _, id := range platoIDs {
		rows = append(rows, model.PedidoPlato{PedidoID: pedidoID, PlatoID: id})
	}
	return clasificar(db.Create(&rows).Error)
}

// Eliminar cascades to pedido_platos.
func (r *pedidoRepo) Eliminar(ctx context.Context, id uint) error {
	return clasificar(r.db.WithContext(ctx).Delete(&model.Pedido{}, id).Error)
}
