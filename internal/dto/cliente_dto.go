package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=50"`
	Estado string `json:"estado" validate:"omitempty,oneof=disponible 'Con clientes'"`
}

type ActualizarClienteRequest struct {
	Nombre *string `json:"nombre" validate:"omitempty,min=1,max=50"`
	Estado *string `json:"estado" validate:"omitempty,oneof=disponible 'Con clientes'"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

type ClienteResponse struct {
	ClienteID uint   `json:"clienteID"`
	Nombre    string `json:"nombre"`
	Estado    string `json:"estado"`
}
