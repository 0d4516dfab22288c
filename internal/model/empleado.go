package model

import "time"

// Roles de empleado. Administrador is the only role allowed on /admin routes.
const (
	RolMesero        = "Mesero"
	RolChef          = "Chef"
	RolJefeCocina    = "JefeCocina"
	RolAdministrador = "Administrador"
)

// Empleado stores staff members; PasswordHash is bcrypt and never serialized.
type Empleado struct {
	ID           uint    `gorm:"primaryKey"`
	Nombre       string  `gorm:"type:varchar(50);not null"`
	Email        string  `gorm:"type:varchar(35);uniqueIndex;not null"`
	PasswordHash string  `gorm:"not null"`
	Rol          string  `gorm:"type:varchar(15);not null"`
	Contacto     *string `gorm:"type:varchar(20)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Empleado) TableName() string { return "empleados" }
