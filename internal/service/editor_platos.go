package service

import (
	"restaurante/internal/model"

	"github.com/shopspring/decimal"
)

// EditorPlatos is the working dish set of an order being edited. Each
// Agregar adds the dish price to the running total and each Quitar subtracts
// it; the total is never reconciled against the sum of current prices.
type EditorPlatos struct {
	platos []model.Plato
	total  decimal.Decimal
}

func NuevoEditorPlatos(platos []model.Plato, total decimal.Decimal) *EditorPlatos {
	cp := make([]model.Plato, len(platos))
	copy(cp, platos)
	return &EditorPlatos{platos: cp, total: total}
}

func (e *EditorPlatos) indice(platoID uint) int {
	for i, p := range e.platos {
		if p.ID == platoID {
			return i
		}
	}
	return -1
}

// Agregar rejects a dish that is already in the order.
func (e *EditorPlatos) Agregar(p model.Plato) error {
	if e.indice(p.ID) >= 0 {
		return conflicto("El plato ya está en el pedido.")
	}
	e.platos = append(e.platos, p)
	e.total = e.total.Add(p.Precio)
	return nil
}

func (e *EditorPlatos) Quitar(platoID uint) error {
	i := e.indice(platoID)
	if i < 0 {
		return noEncontrado("Plato en el pedido")
	}
	e.total = e.total.Sub(e.platos[i].Precio)
	e.platos = append(e.platos[:i], e.platos[i+1:]...)
	return nil
}

// IDs is the list sent to replace the order's dish association.
func (e *EditorPlatos) IDs() []uint {
	ids := make([]uint, 0, len(e.platos))
	for _, p := range e.platos {
		ids = append(ids, p.ID)
	}
	return ids
}

func (e *EditorPlatos) Platos() []model.Plato { return e.platos }

func (e *EditorPlatos) Total() decimal.Decimal { return e.total }
