package model

import "time"

// Estados de un Cliente (mesa).
const (
	ClienteDisponible  = "disponible"
	ClienteConClientes = "Con clientes"
)

// Cliente is a restaurant table/seat, not an end customer.
type Cliente struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Estado    string `gorm:"type:varchar(20);not null;default:'disponible'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "clientes" }
