package infra

// pdf.go: receipt-size ticket for one pedido using go-pdf/fpdf.
// Layout: header, order number and date, table/employee line, dish table,
// bold total, state footer.

import (
	"bytes"
	"fmt"

	"restaurante/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerarTicketPedido renders the ticket for p and returns the PDF bytes.
// p must have Platos loaded; Cliente and Empleado are optional.
func GenerarTicketPedido(p *model.Pedido) ([]byte, error) {
	// A7 ≈ 74mm × 105mm, custom size since "A7" is not in fpdf's named list
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105 + float64(len(p.Platos))*5},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "Restaurante", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, tr("Comanda de Pedido"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Pedido info ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Pedido N° %d", p.ID)), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	fecha := p.CreatedAt.Format("02/01/2006  15:04")
	if p.Fecha != nil && !p.Fecha.IsZero() {
		fecha = p.Fecha.Format("02/01/2006")
	}
	pdf.CellFormat(contentW, 4, fecha, "", 1, "L", false, 0, "")
	if p.Cliente != nil {
		pdf.CellFormat(contentW, 4, tr("Mesa: "+p.Cliente.Nombre), "", 1, "L", false, 0, "")
	}
	if p.Empleado != nil {
		pdf.CellFormat(contentW, 4, tr("Atiende: "+p.Empleado.Nombre), "", 1, "L", false, 0, "")
	}
	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Platos ───────────────────────────────────────────────────────────────
	col1 := contentW * 0.68
	col2 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Plato", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Precio", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, pl := range p.Platos {
		nombre := []rune(pl.Nombre)
		if len(nombre) > 30 {
			nombre = append(nombre[:29], '.')
		}
		pdf.CellFormat(col1, 5, tr(string(nombre)), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, "$"+pl.Precio.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	total := "-"
	if p.Total != nil {
		total = "$" + p.Total.StringFixed(2)
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, total, "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Estado: "+p.Estado, "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}
