package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura sobre ventas, stock y movimientos.
// Sin garantías de consistencia más allá de read-committed al momento de la consulta.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// windowCondition devuelve el fragmento WHERE para la ventana calendario de now
// sobre la columna dada. Los valores van como parámetros $n, $n+1, $n+2.
func windowCondition(column, window string, firstArg int) (string, error) {
	switch window {
	case repository.WindowYear:
		return fmt.Sprintf("EXTRACT(YEAR FROM %s) = $%d", column, firstArg), nil
	case repository.WindowMonth:
		return fmt.Sprintf("EXTRACT(YEAR FROM %s) = $%d AND EXTRACT(MONTH FROM %s) = $%d",
			column, firstArg, column, firstArg+1), nil
	case repository.WindowDay:
		return fmt.Sprintf("EXTRACT(YEAR FROM %s) = $%d AND EXTRACT(MONTH FROM %s) = $%d AND EXTRACT(DAY FROM %s) = $%d",
			column, firstArg, column, firstArg+1, column, firstArg+2), nil
	default:
		return "", domain.ErrInvalidInput
	}
}

// windowArgs devuelve los argumentos (año, mes, día) que exige la ventana.
func windowArgs(window string, now time.Time) []any {
	switch window {
	case repository.WindowMonth:
		return []any{now.Year(), int(now.Month())}
	case repository.WindowDay:
		return []any{now.Year(), int(now.Month()), now.Day()}
	default:
		return []any{now.Year()}
	}
}

// StockTotalValue devuelve SUM(price * current_stock) de todo el inventario.
func (r *AnalyticsRepo) StockTotalValue(ctx context.Context) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(price * current_stock), 0) FROM stocks`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.StockTotalValue: %w", err)
	}
	return total, nil
}

// SaleTotalSum devuelve la suma de total_amount de todas las ventas.
func (r *AnalyticsRepo) SaleTotalSum(ctx context.Context) (decimal.Decimal, error) {
	const query = `SELECT COALESCE(SUM(total_amount), 0) FROM sales`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SaleTotalSum: %w", err)
	}
	return total, nil
}

// SaleTotalForWindow suma total_amount de las ventas de la ventana calendario
// de now, excluyendo las ventas de tipo Batch.
func (r *AnalyticsRepo) SaleTotalForWindow(ctx context.Context, window string, now time.Time) (decimal.Decimal, error) {
	cond, err := windowCondition("date", window, 2)
	if err != nil {
		return decimal.Zero, err
	}
	query := `SELECT COALESCE(SUM(total_amount), 0) FROM sales WHERE sale_type <> $1 AND ` + cond
	args := append([]any{entity.SaleTypeBatch}, windowArgs(window, now)...)

	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SaleTotalForWindow: %w", err)
	}
	return total, nil
}

// SaleTotalByReturnReason suma total_amount de las devoluciones con la razón
// dada dentro del año calendario de now.
func (r *AnalyticsRepo) SaleTotalByReturnReason(ctx context.Context, reason string, now time.Time) (decimal.Decimal, error) {
	const query = `
		SELECT COALESCE(SUM(total_amount), 0)
		FROM sales
		WHERE return_reason = $1 AND EXTRACT(YEAR FROM date) = $2`
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, reason, now.Year()).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("analytics.SaleTotalByReturnReason: %w", err)
	}
	return total, nil
}

// CountSalesAndCredit cuenta las ventas del año de now y cuántas llevan crédito
// distinto de cero.
func (r *AnalyticsRepo) CountSalesAndCredit(ctx context.Context, now time.Time) (total, credit int, err error) {
	const query = `
		SELECT
			COUNT(*)                                                    AS total,
			COUNT(*) FILTER (WHERE credit IS NOT NULL AND credit <> 0)  AS credit_count
		FROM sales
		WHERE EXTRACT(YEAR FROM date) = $1`
	if err := r.q.QueryRow(ctx, query, now.Year()).Scan(&total, &credit); err != nil {
		return 0, 0, fmt.Errorf("analytics.CountSalesAndCredit: %w", err)
	}
	return total, credit, nil
}

// CountCreditDueAfter cuenta ventas con crédito que vence estrictamente después de moment.
func (r *AnalyticsRepo) CountCreditDueAfter(ctx context.Context, moment time.Time) (int, error) {
	const query = `SELECT COUNT(*) FROM sales WHERE credit_due > $1`
	var count int
	if err := r.q.QueryRow(ctx, query, moment).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountCreditDueAfter: %w", err)
	}
	return count, nil
}

// CountCreditDueBefore cuenta ventas con crédito vencido estrictamente antes de moment.
func (r *AnalyticsRepo) CountCreditDueBefore(ctx context.Context, moment time.Time) (int, error) {
	const query = `SELECT COUNT(*) FROM sales WHERE credit_due < $1`
	var count int
	if err := r.q.QueryRow(ctx, query, moment).Scan(&count); err != nil {
		return 0, fmt.Errorf("analytics.CountCreditDueBefore: %w", err)
	}
	return count, nil
}

// TopProducts devuelve el ranking completo de productos por cantidad vendida en
// la ventana calendario de now. Excluye los tipos Batch y Usage. El nombre se
// resuelve contra stocks; 'Deleted Product' cuando el stock ya no existe.
// No pagina: el use case corta la página después de agregar.
func (r *AnalyticsRepo) TopProducts(ctx context.Context, window string, now time.Time) ([]repository.TopProductResult, error) {
	cond, err := windowCondition("s.date", window, 3)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT
		    s.product_id                          AS product_id,
		    SUM(s.quantity)                       AS total_sold,
		    COALESCE(MIN(st.name), 'Deleted Product') AS name
		FROM sales s
		LEFT JOIN stocks st ON st.id = s.product_id
		WHERE s.sale_type NOT IN ($1, $2) AND ` + cond + `
		GROUP BY s.product_id
		ORDER BY total_sold DESC`
	args := append([]any{entity.SaleTypeBatch, entity.SaleTypeUsage}, windowArgs(window, now)...)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.TopProducts: %w", err)
	}
	defer rows.Close()

	var results []repository.TopProductResult
	for rows.Next() {
		var row repository.TopProductResult
		if err := rows.Scan(&row.ProductID, &row.TotalSold, &row.Name); err != nil {
			return nil, fmt.Errorf("analytics.TopProducts scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// ProducedAdjustments agrega los ajustes positivos de productos producidos en
// la ventana calendario de now, ordenados por total descendente.
func (r *AnalyticsRepo) ProducedAdjustments(ctx context.Context, window string, now time.Time) ([]repository.ProducedAdjustmentResult, error) {
	cond, err := windowCondition("m.date", window, 2)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT m.name, SUM(m.adjustment) AS total_adjustment
		FROM movements m
		JOIN stocks st ON st.id = m.product_id
		WHERE st.type = $1 AND m.adjustment > 0 AND ` + cond + `
		GROUP BY m.name
		ORDER BY total_adjustment DESC`
	args := append([]any{entity.StockTypeProduced}, windowArgs(window, now)...)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("analytics.ProducedAdjustments: %w", err)
	}
	defer rows.Close()

	var results []repository.ProducedAdjustmentResult
	for rows.Next() {
		var row repository.ProducedAdjustmentResult
		if err := rows.Scan(&row.Name, &row.TotalAdjustment); err != nil {
			return nil, fmt.Errorf("analytics.ProducedAdjustments scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
