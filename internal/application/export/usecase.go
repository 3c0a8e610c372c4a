// Package export arma el documento tabular del inventario y lo entrega a un
// generador concreto (PDF o imagen).
package export

import (
	"context"
	"strings"
	"time"

	"github.com/alaire/inventario-api/internal/domain/repository"
)

const tituloReporte = "Reporte de Inventario - Al Aire Rooftop"

// TableRow fila de la tabla exportada.
type TableRow struct {
	Nombre  string
	Bodega  int64
	Ingreso int64
	Salida  int64
	Cocina  int64
	Total   int64
}

// TableDocument documento completo listo para renderizar.
type TableDocument struct {
	Titulo        string
	DescargadoPor string
	Descargado    time.Time
	Rows          []TableRow
}

// TableGenerator renderiza un documento tabular a bytes.
type TableGenerator interface {
	Generate(doc TableDocument) ([]byte, error)
}

// UseCase exportación del inventario actual.
type UseCase struct {
	products repository.ProductRepository
	pdf      TableGenerator
	imagen   TableGenerator
}

func NewUseCase(products repository.ProductRepository, pdf, imagen TableGenerator) *UseCase {
	return &UseCase{products: products, pdf: pdf, imagen: imagen}
}

func (uc *UseCase) buildDocument(ctx context.Context, q, descargadoPor string) (TableDocument, error) {
	rows, err := uc.products.List(ctx)
	if err != nil {
		return TableDocument{}, err
	}
	doc := TableDocument{
		Titulo:        tituloReporte,
		DescargadoPor: descargadoPor,
		Descargado:    time.Now(),
	}
	q = strings.ToLower(strings.TrimSpace(q))
	for _, r := range rows {
		if q != "" && !strings.Contains(strings.ToLower(r.Nombre), q) {
			continue
		}
		doc.Rows = append(doc.Rows, TableRow{
			Nombre:  r.Nombre,
			Bodega:  r.Bodega,
			Ingreso: r.Ingreso,
			Salida:  r.Salida,
			Cocina:  r.Cocina,
			Total:   r.Total(),
		})
	}
	return doc, nil
}

// PDF exporta el inventario actual como documento PDF. q filtra por nombre
// (substring, sin distinguir mayúsculas), igual que el listado de productos.
func (uc *UseCase) PDF(ctx context.Context, q, descargadoPor string) ([]byte, error) {
	doc, err := uc.buildDocument(ctx, q, descargadoPor)
	if err != nil {
		return nil, err
	}
	return uc.pdf.Generate(doc)
}

// Imagen exporta el inventario actual como imagen PNG.
func (uc *UseCase) Imagen(ctx context.Context, q, descargadoPor string) ([]byte, error) {
	doc, err := uc.buildDocument(ctx, q, descargadoPor)
	if err != nil {
		return nil, err
	}
	return uc.imagen.Generate(doc)
}
