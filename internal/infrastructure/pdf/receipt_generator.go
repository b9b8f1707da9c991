// Package pdf genera la representación gráfica de un comprobante de venta.
//
// Layout de la página A5:
//
//	┌──────────────────────────────────────────────┐
//	│  HEADER: nombre de la app │ N° transacción   │
//	│  ──────────────────────────────────────────  │
//	│  CLIENTE: nombre + contacto                   │
//	│  ──────────────────────────────────────────  │
//	│  DETALLE: producto | cantidad | precio        │
//	│  TOTAL / crédito pendiente / vencimiento      │
//	└──────────────────────────────────────────────┘
package pdf

import (
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

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ReceiptGenerator genera comprobantes de venta en PDF usando Maroto v2.
type ReceiptGenerator struct {
	appName string
}

// NewReceiptGenerator construye el generador.
func NewReceiptGenerator(appName string) *ReceiptGenerator {
	return &ReceiptGenerator{appName: appName}
}

// GenerateSaleReceipt genera el PDF del comprobante y devuelve sus bytes.
// productName viene resuelto por el caller; 'Deleted Product' si el stock ya no existe.
func (g *ReceiptGenerator) GenerateSaleReceipt(sale *entity.Sale, productName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de venta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(g.appName, sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(customerRow(sale))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(detailHeaderRow())
	m.AddRows(detailRow(sale, productName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range totalsRows(sale) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre de la app (izq) y N° de transacción + fecha (der).
func headerRow(appName string, sale *entity.Sale) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New(appName, props.Text{Style: fontstyle.Bold, Size: 12, Color: colorPrimary, Top: 1}),
		),
		col.New(5).Add(
			text.New("Transacción: "+sale.TransactionID, props.Text{Size: 9, Align: align.Right, Top: 1}),
			text.New(sale.Date.Format("02/01/2006 15:04"), props.Text{Size: 8, Align: align.Right, Top: 7, Color: colorGray}),
		),
	)
}

func customerRow(sale *entity.Sale) core.Row {
	return row.New(12).Add(
		col.New(7).Add(
			text.New("Cliente: "+sale.FullName, props.Text{Size: 9, Top: 1}),
			text.New("Contacto: "+sale.Contact, props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
		col.New(5).Add(
			text.New("Pago: "+sale.PaymentMethod, props.Text{Size: 9, Align: align.Right, Top: 1}),
		),
	)
}

func detailHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(6).Add(text.New("Producto", h)),
		col.New(2).Add(text.New("Cant.", h)),
		col.New(4).Add(text.New("Importe", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1, Align: align.Right})),
	)
}

func detailRow(sale *entity.Sale, productName string) core.Row {
	return row.New(7).Add(
		col.New(6).Add(text.New(productName, props.Text{Size: 8, Top: 1})),
		col.New(2).Add(text.New(fmt.Sprintf("%d", sale.Quantity), props.Text{Size: 8, Top: 1})),
		col.New(4).Add(text.New(sale.Amount.StringFixed(2), props.Text{Size: 8, Top: 1, Align: align.Right})),
	)
}

func totalsRows(sale *entity.Sale) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			col.New(8).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Top: 1})),
			col.New(4).Add(text.New(sale.TotalAmount.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 10, Top: 1, Align: align.Right})),
		),
	}
	if sale.HasCredit() {
		due := ""
		if sale.CreditDue != nil {
			due = " (vence " + sale.CreditDue.Format("02/01/2006") + ")"
		}
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(text.New(
				"Crédito pendiente: "+sale.Credit.StringFixed(2)+due,
				props.Text{Size: 8, Top: 1, Color: colorGray},
			)),
		))
	}
	return rows
}
