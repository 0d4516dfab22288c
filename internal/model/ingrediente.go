package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Ingrediente struct {
	ID           uint            `gorm:"primaryKey"`
	Nombre       string          `gorm:"type:varchar(50);uniqueIndex;not null"`
	Cantidad     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	UnidadMedida string          `gorm:"type:varchar(20);not null;default:'unidad'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Ingrediente) TableName() string { return "ingredientes" }
