package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearPlatoRequest struct {
	Nombre         string          `json:"nombre"         validate:"required,min=2,max=80"`
	Descripcion    string          `json:"descripcion"    validate:"required,min=1,max=500"`
	Precio         decimal.Decimal `json:"precio"         validate:"required,gt=0,decimal_10_2"`
	Disponibilidad *bool           `json:"disponibilidad"`
	IngredienteID  []uint          `json:"ingredienteID"  validate:"required,min=1,dive,gt=0,max=2147483647"`
}

// ActualizarPlatoRequest replaces the ingredient list wholesale when IngredienteID is present.
type ActualizarPlatoRequest struct {
	Nombre         *string          `json:"nombre"         validate:"omitempty,min=2,max=80"`
	Descripcion    *string          `json:"descripcion"    validate:"omitempty,min=1,max=500"`
	Precio         *decimal.Decimal `json:"precio"         validate:"omitempty,gt=0,decimal_10_2"`
	Disponibilidad *bool            `json:"disponibilidad"`
	IngredienteID  *[]uint          `json:"ingredienteID"  validate:"omitempty,min=1,dive,gt=0,max=2147483647"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type PlatoResponse struct {
	PlatoID        uint                  `json:"platoID"`
	Nombre         string                `json:"nombre"`
	Descripcion    string                `json:"descripcion"`
	Precio         decimal.Decimal       `json:"precio"`
	Disponibilidad bool                  `json:"disponibilidad"`
	IngredienteID  []uint                `json:"ingredienteID"`
	Ingredientes   []IngredienteResponse `json:"ingredientes"`
}

// PlatoResumen is the dish shape embedded in orders.
type PlatoResumen struct {
	PlatoID uint            `json:"platoID"`
	Nombre  string          `json:"nombre"`
	Precio  decimal.Decimal `json:"precio"`
}
