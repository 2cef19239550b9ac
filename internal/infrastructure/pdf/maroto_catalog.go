// Package pdf implementa la versión imprimible del catálogo de productos.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la tienda  │  Fecha de exportación        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Precio | Stock | Descripción                │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: total de productos                                  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"github.com/tu-usuario/mercadito/internal/application/dto"
	"github.com/tu-usuario/mercadito/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.CatalogPDFGenerator = (*MarotoCatalogGenerator)(nil)

// MarotoCatalogGenerator implementa usecase.CatalogPDFGenerator usando Maroto v2.
type MarotoCatalogGenerator struct {
	storeName string
}

// NewMarotoCatalogGenerator construye el generador.
func NewMarotoCatalogGenerator(storeName string) *MarotoCatalogGenerator {
	return &MarotoCatalogGenerator{storeName: storeName}
}

// GenerateCatalogPDF genera el PDF del catálogo y devuelve sus bytes.
func (g *MarotoCatalogGenerator) GenerateCatalogPDF(_ context.Context, products []dto.ProductResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Catálogo de productos", true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.storeName, len(products)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, p := range products {
		m.AddRows(productRow(p))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(products)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la tienda (izq) y cantidad de productos (der).
func headerRow(storeName string, total int) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Catálogo de productos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%d productos", total), props.Text{
				Size: 9, Top: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	bold := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary}
	boldRight := bold
	boldRight.Align = align.Right
	return row.New(8).Add(
		col.New(4).Add(text.New("Nombre", bold)),
		col.New(2).Add(text.New("Precio", boldRight)),
		col.New(1).Add(text.New("Stock", boldRight)),
		col.New(5).Add(text.New("Descripción", bold)),
	)
}

func productRow(p dto.ProductResponse) core.Row {
	normal := props.Text{Size: 8}
	right := props.Text{Size: 8, Align: align.Right}
	desc := truncateDescription(p.Description, 90)
	return row.New(6).Add(
		col.New(4).Add(text.New(p.Name, normal)),
		col.New(2).Add(text.New("$ "+p.Price.StringFixed(2), right)),
		col.New(1).Add(text.New(fmt.Sprintf("%d", p.Stock), right)),
		col.New(5).Add(text.New(desc, normal)),
	)
}

// truncateDescription corta en un límite de runas, no de bytes: una descripción
// con tildes o eñes nunca queda partida a mitad de un carácter UTF-8.
func truncateDescription(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

func footerRow(total int) core.Row {
	return row.New(6).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total: %d productos publicados", total), props.Text{
				Size: 8, Color: colorGray, Align: align.Right,
			}),
		),
	)
}
