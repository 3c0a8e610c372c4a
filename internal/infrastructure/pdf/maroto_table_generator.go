// Package pdf genera el reporte descargable del inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Reporte de Inventario - Al Aire Rooftop            │
//	│  Descargado por + fecha/hora                                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | Bodega | Ingreso | Salida | Cocina | Tot │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/alaire/inventario-api/internal/application/export"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 21, Blue: 41}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoTableGenerator implementa export.TableGenerator usando Maroto v2.
type MarotoTableGenerator struct{}

// NewMarotoTableGenerator construye el generador.
func NewMarotoTableGenerator() *MarotoTableGenerator { return &MarotoTableGenerator{} }

var _ export.TableGenerator = (*MarotoTableGenerator)(nil)

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoTableGenerator) Generate(doc export.TableDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(doc.Titulo, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(doc.Rows) {
		m.AddRows(r)
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// titleRow: título principal + quién descarga y cuándo.
func titleRow(doc export.TableDocument) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New(doc.Titulo, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Descargado por %s el %s",
				doc.DescargadoPor,
				doc.Descargado.Format("02/01/2006 15:04"),
			), props.Text{Size: 8, Top: 10, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla sobre la grilla de 12 columnas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Bodega", 2, align.Right),
		h("Ingreso", 2, align.Right),
		h("Salida", 2, align.Right),
		h("Cocina", 1, align.Right),
		h("Total", 1, align.Right),
	)
}

// tableRows: una fila por producto.
func tableRows(items []export.TableRow) []core.Row {
	num := func(v int64, size int) core.Col {
		return col.New(size).Add(text.New(
			strconv.FormatInt(v, 10),
			props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
		))
	}
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(
				it.Nombre,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			num(it.Bodega, 2),
			num(it.Ingreso, 2),
			num(it.Salida, 2),
			num(it.Cocina, 1),
			num(it.Total, 1),
		))
	}
	return result
}

// footerRow: totales del documento.
func footerRow(doc export.TableDocument) core.Row {
	var bodega, cocina, total int64
	for _, r := range doc.Rows {
		bodega += r.Bodega
		cocina += r.Cocina
		total += r.Total
	}
	return row.New(8).Add(
		col.New(12).Add(text.New(
			fmt.Sprintf("Productos: %d   |   Bodega: %d   |   Cocina: %d   |   Total: %d",
				len(doc.Rows), bodega, cocina, total),
			props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 2, Color: colorPrimary},
		)),
	)
}
