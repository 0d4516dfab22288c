package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plato is a menu dish. Ingredientes is read through the explicit
// plato_ingredientes table; writes go through PlatoIngrediente rows.
type Plato struct {
	ID             uint            `gorm:"primaryKey"`
	Nombre         string          `gorm:"type:varchar(80);uniqueIndex;not null"`
	Descripcion    string          `gorm:"type:text;not null"`
	Precio         decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Disponibilidad bool            `gorm:"not null;default:true"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Ingredientes []Ingrediente `gorm:"many2many:plato_ingredientes;joinForeignKey:PlatoID;joinReferences:IngredienteID"`
}

func (Plato) TableName() string { return "platos" }

// PlatoIngrediente is one row of the dish→ingredient association.
type PlatoIngrediente struct {
	PlatoID       uint `gorm:"primaryKey"`
	IngredienteID uint `gorm:"primaryKey"`
}

func (PlatoIngrediente) TableName() string { return "plato_ingredientes" }
