package model

import "time"

// Turno is one work shift for one employee on one date.
// HoraInicio/HoraFin are zero-padded "HH:MM" so they order lexicographically.
type Turno struct {
	ID         uint   `gorm:"primaryKey"`
	Fecha      Fecha  `gorm:"type:date;not null;index"`
	HoraInicio string `gorm:"type:varchar(5);not null"`
	HoraFin    string `gorm:"type:varchar(5);not null"`
	EmpleadoID *uint  `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Empleado *Empleado `gorm:"foreignKey:EmpleadoID"`
}

func (Turno) TableName() string { return "turnos" }
