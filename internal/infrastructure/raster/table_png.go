// Package raster renderiza la tabla de inventario como imagen PNG, para los
// clientes que comparten el reporte por chat en lugar de PDF.
package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/alaire/inventario-api/internal/application/export"
)

const (
	cellHeight = 24
	padding    = 16
	headerPad  = 40
)

// Anchos de columna en píxeles: Producto, Bodega, Ingreso, Salida, Cocina, Total.
var colWidths = []int{220, 80, 80, 80, 80, 80}

var (
	colorFondo    = color.RGBA{255, 255, 255, 255}
	colorCabecera = color.RGBA{0, 21, 41, 255}
	colorTexto    = color.RGBA{30, 30, 30, 255}
	colorBlanco   = color.RGBA{255, 255, 255, 255}
	colorZebra    = color.RGBA{243, 245, 247, 255}
	colorBorde    = color.RGBA{210, 214, 219, 255}
)

// TablePNGGenerator implementa export.TableGenerator dibujando la tabla con
// la fuente bitmap Face7x13. La fuente solo cubre ASCII: los caracteres
// acentuados se dibujan con el glifo de reemplazo.
type TablePNGGenerator struct{}

// NewTablePNGGenerator construye el generador.
func NewTablePNGGenerator() *TablePNGGenerator { return &TablePNGGenerator{} }

var _ export.TableGenerator = (*TablePNGGenerator)(nil)

// Generate dibuja el documento y devuelve los bytes PNG.
func (g *TablePNGGenerator) Generate(doc export.TableDocument) ([]byte, error) {
	width := 2 * padding
	for _, w := range colWidths {
		width += w
	}
	height := headerPad + (len(doc.Rows)+2)*cellHeight + padding

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorFondo), image.Point{}, draw.Src)

	// Título y metadatos
	drawText(img, padding, padding+10, doc.Titulo, colorTexto)
	meta := fmt.Sprintf("Descargado por %s el %s", doc.DescargadoPor, doc.Descargado.Format("02/01/2006 15:04"))
	drawText(img, padding, padding+26, meta, colorTexto)

	// Cabecera de la tabla
	y := headerPad + cellHeight
	headerRect := image.Rect(padding, y-cellHeight+6, width-padding, y+6)
	draw.Draw(img, headerRect, image.NewUniform(colorCabecera), image.Point{}, draw.Src)
	drawRow(img, y, []string{"Producto", "Bodega", "Ingreso", "Salida", "Cocina", "Total"}, colorBlanco)

	// Filas con rayado alterno
	for i, r := range doc.Rows {
		y += cellHeight
		if i%2 == 1 {
			rowRect := image.Rect(padding, y-cellHeight+6, width-padding, y+6)
			draw.Draw(img, rowRect, image.NewUniform(colorZebra), image.Point{}, draw.Src)
		}
		drawRow(img, y, []string{
			r.Nombre,
			strconv.FormatInt(r.Bodega, 10),
			strconv.FormatInt(r.Ingreso, 10),
			strconv.FormatInt(r.Salida, 10),
			strconv.FormatInt(r.Cocina, 10),
			strconv.FormatInt(r.Total, 10),
		}, colorTexto)
	}

	// Borde exterior de la tabla
	tableRect := image.Rect(padding, headerPad+6, width-padding, y+6)
	drawBorder(img, tableRect, colorBorde)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("png: codificar imagen: %w", err)
	}
	return buf.Bytes(), nil
}

// drawRow dibuja una fila de celdas en la línea base y.
func drawRow(img *image.RGBA, y int, cells []string, c color.Color) {
	x := padding + 6
	for i, cell := range cells {
		drawText(img, x, y, cell, c)
		x += colWidths[i]
	}
}

// drawText dibuja s con la línea base en (x, y).
func drawText(img *image.RGBA, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// drawBorder dibuja el rectángulo de 1px que delimita la tabla.
func drawBorder(img *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}
