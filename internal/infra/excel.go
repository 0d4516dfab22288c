package infra

import (
	"bytes"
	"fmt"
	"strings"

	"restaurante/internal/model"

	"github.com/xuri/excelize/v2"
)

const hojaPedidos = "Pedidos"

var encabezadoPedidos = []interface{}{"ID", "Fecha", "Estado", "Total", "Cliente", "Empleado", "Liberado", "Platos"}

// ExportarPedidos writes one row per order into an .xlsx workbook and
// returns the file bytes. Orders need Platos loaded.
func ExportarPedidos(pedidos []model.Pedido) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", hojaPedidos); err != nil {
		return nil, fmt.Errorf("excel: rename sheet: %w", err)
	}
	if err := f.SetSheetRow(hojaPedidos, "A1", &encabezadoPedidos); err != nil {
		return nil, fmt.Errorf("excel: header: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetRowStyle(hojaPedidos, 1, 1, bold)
	}

	for i, p := range pedidos {
		row := []interface{}{p.ID, "", p.Estado, nil, nil, nil, p.Liberado, nombresPlatos(p.Platos)}
		if p.Fecha != nil && !p.Fecha.IsZero() {
			row[1] = p.Fecha.String()
		}
		if p.Total != nil {
			row[3] = p.Total.InexactFloat64()
		}
		if p.ClienteID != nil {
			row[4] = *p.ClienteID
		}
		if p.EmpleadoID != nil {
			row[5] = *p.EmpleadoID
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(hojaPedidos, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: row %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(hojaPedidos, "H", "H", 50)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: write: %w", err)
	}
	return buf.Bytes(), nil
}

func nombresPlatos(platos []model.Plato) string {
	nombres := make([]string, 0, len(platos))
	for _, pl := range platos {
		nombres = append(nombres, pl.Nombre)
	}
	return strings.Join(nombres, ", ")
}
