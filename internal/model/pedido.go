package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un Pedido.
const (
	PedidoPendiente = "Pendiente"
	PedidoCompleto  = "Completo"
)

// Pedido is an order placed at a table. Total is entered by the client and is
// not recomputed from dish prices. Liberado only drives UI partitioning and is
// independent of Estado.
type Pedido struct {
	ID         uint             `gorm:"primaryKey"`
	Fecha      *Fecha           `gorm:"type:date"`
	Estado     string           `gorm:"type:varchar(10);not null;default:'Pendiente'"`
	Total      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	ClienteID  *uint            `gorm:"index"`
	EmpleadoID *uint            `gorm:"index"`
	Liberado   bool             `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Cliente  *Cliente  `gorm:"foreignKey:ClienteID"`
	Empleado *Empleado `gorm:"foreignKey:EmpleadoID"`
	Platos   []Plato   `gorm:"many2many:pedido_platos;joinForeignKey:PedidoID;joinReferences:PlatoID"`
}

func (Pedido) TableName() string { return "pedidos" }

// PedidoPlato is one row of the order→dish association.
type PedidoPlato struct {
	PedidoID uint `gorm:"primaryKey"`
	PlatoID  uint `gorm:"primaryKey"`
}

func (PedidoPlato) TableName() string { return "pedido_platos" }
