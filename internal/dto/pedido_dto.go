package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPedidoRequest struct {
	Fecha      *string          `json:"fecha"      validate:"omitempty,datetime=2006-01-02"`
	Estado     *string          `json:"estado"     validate:"omitempty,oneof=Pendiente Completo"`
	Total      *decimal.Decimal `json:"total"      validate:"omitempty,gte=0,decimal_10_2"`
	ClienteID  *uint            `json:"clienteID"  validate:"omitempty,gt=0,max=2147483647"`
	EmpleadoID *uint            `json:"empleadoID" validate:"omitempty,gt=0,max=2147483647"`
	Platos     []uint           `json:"platos"     validate:"omitempty,dive,gt=0,max=2147483647"`
	Liberado   *bool            `json:"liberado"`
}

// ActualizarPedidoRequest merges scalar fields; Platos, when present (even
// empty), replaces the dish association wholesale.
type ActualizarPedidoRequest struct {
	Fecha      *string          `json:"fecha"      validate:"omitempty,datetime=2006-01-02"`
	Estado     *string          `json:"estado"     validate:"omitempty,oneof=Pendiente Completo"`
	Total      *decimal.Decimal `json:"total"      validate:"omitempty,gte=0,decimal_10_2"`
	ClienteID  *uint            `json:"clienteID"  validate:"omitempty,gt=0,max=2147483647"`
	EmpleadoID *uint            `json:"empleadoID" validate:"omitempty,gt=0,max=2147483647"`
	Platos     *[]uint          `json:"platos"     validate:"omitempty,dive,gt=0,max=2147483647"`
	Liberado   *bool            `json:"liberado"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PedidoResponse struct {
	PedidoID   uint             `json:"pedidoID"`
	Fecha      *string          `json:"fecha"`
	Estado     string           `json:"estado"`
	Total      *decimal.Decimal `json:"total"`
	ClienteID  *uint            `json:"clienteID"`
	EmpleadoID *uint            `json:"empleadoID"`
	Liberado   bool             `json:"liberado"`
	Platos     []PlatoResumen   `json:"platos"`
}
