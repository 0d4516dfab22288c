package dto

import "github.com/shopspring/decimal"

type CrearIngredienteRequest struct {
	Nombre       string           `json:"nombre"       validate:"required,min=2,max=50"`
	Cantidad     *decimal.Decimal `json:"cantidad"     validate:"omitempty,gte=0,decimal_10_2"`
	UnidadMedida *string          `json:"unidadMedida" validate:"omitempty,min=1,max=20"`
}

type ActualizarIngredienteRequest struct {
	Nombre       *string          `json:"nombre"       validate:"omitempty,min=2,max=50"`
	Cantidad     *decimal.Decimal `json:"cantidad"     validate:"omitempty,gte=0,decimal_10_2"`
	UnidadMedida *string          `json:"unidadMedida" validate:"omitempty,min=1,max=20"`
}

type IngredienteResponse struct {
	IngredienteID uint            `json:"ingredienteID"`
	Nombre        string          `json:"nombre"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	UnidadMedida  string          `json:"unidadMedida"`
}
