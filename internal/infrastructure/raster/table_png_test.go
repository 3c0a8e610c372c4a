package raster

import (
	"bytes"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alaire/inventario-api/internal/application/export"
)

func TestGenerate_ProducePNGValido(t *testing.T) {
	gen := NewTablePNGGenerator()
	doc := export.TableDocument{
		Titulo:        "Reporte de Inventario - Al Aire Rooftop",
		DescargadoPor: "Ana Perez",
		Descargado:    time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC),
		Rows: []export.TableRow{
			{Nombre: "Tomate", Bodega: 6, Ingreso: 2, Salida: 3, Cocina: 6, Total: 12},
			{Nombre: "Cebolla", Bodega: 4, Total: 4},
		},
	}

	data, err := gen.Generate(doc)

	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err, "la salida debe ser un PNG decodificable")

	bounds := img.Bounds()
	assert.Greater(t, bounds.Dx(), 400)
	assert.Greater(t, bounds.Dy(), 100)
}

func TestGenerate_SinFilas(t *testing.T) {
	gen := NewTablePNGGenerator()

	data, err := gen.Generate(export.TableDocument{
		Titulo:     "Reporte de Inventario - Al Aire Rooftop",
		Descargado: time.Now(),
	})

	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}
