// Package pdf genera el reporte imprimible de clientes frecuentes:
// una tabla con nombre, contacto, compras completadas y total gastado.
package pdf

import (
	"fmt"
	"time"

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

	"github.com/tu-usuario/ventas-clientes-api/internal/application/dto"
)

var (
	colorPrimario = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGris     = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReporteClientes genera PDFs con listados de clientes.
type ReporteClientes struct{}

// NewReporteClientes construye el generador.
func NewReporteClientes() *ReporteClientes { return &ReporteClientes{} }

// Frecuentes genera el reporte de clientes frecuentes y devuelve sus bytes.
func (g *ReporteClientes) Frecuentes(clientes []dto.ClienteFrecuenteResponse, generado time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Clientes Frecuentes", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(tituloRow(generado))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimario, Thickness: 0.5}))
	m.AddRows(cabeceraTablaRow())
	for _, c := range clientes {
		m.AddRows(clienteRow(c))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGris, Thickness: 0.3}))
	m.AddRows(pieRow(len(clientes)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte: %w", err)
	}
	return doc.GetBytes(), nil
}

func tituloRow(generado time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("REPORTE DE CLIENTES FRECUENTES", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimario, Top: 2,
			}),
			text.New("Clientes con 3 o más compras completadas", props.Text{
				Size: 8, Top: 10, Color: colorGris,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+generado.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGris,
			}),
		),
	)
}

func cabeceraTablaRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimario, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cliente", 4, align.Left),
		h("Teléfono", 2, align.Left),
		h("Email", 3, align.Left),
		h("Compras", 1, align.Center),
		h("Total gastado", 2, align.Right),
	)
}

func clienteRow(c dto.ClienteFrecuenteResponse) core.Row {
	email := c.Email
	if email == "" {
		email = "—"
	}
	return row.New(7).Add(
		col.New(4).Add(text.New(c.Nombre, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(c.Telefono, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(3).Add(text.New(email, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", c.TotalCompras), props.Text{
			Size: 8, Align: align.Center, Top: 1,
		})),
		col.New(2).Add(text.New("$"+c.TotalGastado.StringFixed(2), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

func pieRow(total int) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%d clientes listados", total), props.Text{
			Size: 7, Color: colorGris, Top: 2,
		}),
	))
}
