package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Ventanas calendario para las consultas agregadas ("hoy", "este mes", "este año").
const (
	WindowDay   = "day"
	WindowMonth = "month"
	WindowYear  = "year"
)

// TopProductResult fila cruda del ranking de productos vendidos en un período.
// Name resuelve contra stock; 'Deleted Product' cuando el stock ya no existe.
type TopProductResult struct {
	ProductID string
	TotalSold int
	Name      string
}

// ProducedAdjustmentResult total de ajustes positivos por producto producido.
type ProducedAdjustmentResult struct {
	Name            string
	TotalAdjustment int
}

// AnalyticsRepository define las consultas de solo lectura sobre ventas,
// stock y movimientos. Las implementaciones no modifican datos y no ofrecen
// más consistencia que read-committed al momento de la consulta.
// now se inyecta para que el reloj sea un colaborador explícito.
type AnalyticsRepository interface {
	// StockTotalValue devuelve SUM(price * current_stock) de todo el inventario.
	StockTotalValue(ctx context.Context) (decimal.Decimal, error)

	// SaleTotalSum devuelve la suma de Total_amount de todas las ventas.
	SaleTotalSum(ctx context.Context) (decimal.Decimal, error)

	// SaleTotalForWindow suma Total_amount de las ventas dentro de la ventana
	// calendario actual (día/mes/año de now), excluyendo el tipo Batch.
	SaleTotalForWindow(ctx context.Context, window string, now time.Time) (decimal.Decimal, error)

	// SaleTotalByReturnReason suma Total_amount de las devoluciones con la razón
	// dada dentro del año calendario de now.
	SaleTotalByReturnReason(ctx context.Context, reason string, now time.Time) (decimal.Decimal, error)

	// CountSalesAndCredit cuenta las ventas del año de now y cuántas de ellas
	// llevan crédito distinto de cero.
	CountSalesAndCredit(ctx context.Context, now time.Time) (total, credit int, err error)

	// CountCreditDueAfter cuenta ventas con crédito que vence estrictamente después de moment.
	CountCreditDueAfter(ctx context.Context, moment time.Time) (int, error)

	// CountCreditDueBefore cuenta ventas con crédito vencido estrictamente antes de moment.
	CountCreditDueBefore(ctx context.Context, moment time.Time) (int, error)

	// TopProducts devuelve el ranking completo de productos por cantidad vendida
	// en la ventana calendario de now (tipos Batch y Usage excluidos), ordenado
	// por cantidad descendente. La paginación ocurre después, en el use case.
	TopProducts(ctx context.Context, window string, now time.Time) ([]TopProductResult, error)

	// ProducedAdjustments agrega los ajustes positivos de productos producidos
	// en la ventana calendario de now, ordenados por total descendente.
	ProducedAdjustments(ctx context.Context, window string, now time.Time) ([]ProducedAdjustmentResult, error)
}
