package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearEmpleadoRequest struct {
	Nombre   string  `json:"nombre"   validate:"required,min=5,max=50,solo_letras"`
	Email    string  `json:"email"    validate:"required,min=15,max=35,email,dominio_email"`
	Password string  `json:"password" validate:"required,min=8,max=26,alphanum"`
	Rol      string  `json:"rol"      validate:"required,min=4,max=15,oneof=Mesero Chef JefeCocina Administrador"`
	Contacto *string `json:"contacto" validate:"omitempty,max=20"`
}

// ActualizarEmpleadoRequest is a partial update: at least one field must be present.
// NewPassword changes the password and requires Password to match the current one.
type ActualizarEmpleadoRequest struct {
	Nombre      *string `json:"nombre"      validate:"omitempty,min=5,max=50,solo_letras"`
	Email       *string `json:"email"       validate:"omitempty,min=15,max=35,email,dominio_email"`
	Password    *string `json:"password"    validate:"omitempty,min=8,max=26,alphanum"`
	NewPassword *string `json:"newPassword" validate:"omitempty,min=8,max=26,alphanum"`
	Rol         *string `json:"rol"         validate:"omitempty,min=4,max=15,oneof=Mesero Chef JefeCocina Administrador"`
	Contacto    *string `json:"contacto"    validate:"omitempty,max=20"`
}

// BuscarEmpleadoQuery looks an employee up by id or email (at least one).
type BuscarEmpleadoQuery struct {
	EmpleadoID *int    `form:"empleadoID" json:"empleadoID" validate:"omitempty,gt=0,max=2147483647"`
	Email      *string `form:"email"      json:"email"      validate:"omitempty,min=15,max=35,email,dominio_email"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type EmpleadoResponse struct {
	EmpleadoID uint    `json:"empleadoID"`
	Nombre     string  `json:"nombre"`
	Email      string  `json:"email"`
	Rol        string  `json:"rol"`
	Contacto   *string `json:"contacto"`
}
