package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Querier de grabación: captura el SQL y los argumentos que emite el repo y
// devuelve filas preparadas, sin tocar una base real.
// ──────────────────────────────────────────────────────────────────────────────

type recordingQuerier struct {
	lastSQL  string
	lastArgs []any
	rowData  [][]any // filas a devolver, una fila = valores en orden de Scan
}

func (q *recordingQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.lastSQL, q.lastArgs = sql, args
	return pgconn.CommandTag{}, nil
}

func (q *recordingQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.lastSQL, q.lastArgs = sql, args
	return &stubRows{data: q.rowData}, nil
}

func (q *recordingQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.lastSQL, q.lastArgs = sql, args
	row := []any{}
	if len(q.rowData) > 0 {
		row = q.rowData[0]
	}
	return &stubRow{values: row}
}

type stubRow struct {
	values []any
}

func (r *stubRow) Scan(dest ...any) error {
	for i, d := range dest {
		if i < len(r.values) {
			setScanValue(d, r.values[i])
		}
	}
	return nil
}

type stubRows struct {
	data [][]any
	idx  int
}

func (r *stubRows) Close()                                       {}
func (r *stubRows) Err() error                                   { return nil }
func (r *stubRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *stubRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *stubRows) Values() ([]any, error)                       { return nil, nil }
func (r *stubRows) RawValues() [][]byte                          { return nil }
func (r *stubRows) Conn() *pgx.Conn                              { return nil }

func (r *stubRows) Next() bool {
	if r.idx >= len(r.data) {
		return false
	}
	r.idx++
	return true
}

func (r *stubRows) Scan(dest ...any) error {
	row := r.data[r.idx-1]
	for i, d := range dest {
		if i < len(row) {
			setScanValue(d, row[i])
		}
	}
	return nil
}

func setScanValue(dest, val any) {
	switch d := dest.(type) {
	case *string:
		d2, _ := val.(string)
		*d = d2
	case *int:
		d2, _ := val.(int)
		*d = d2
	case *decimal.Decimal:
		d2, _ := val.(decimal.Decimal)
		*d = d2
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Construcción de la condición de ventana calendario
// ──────────────────────────────────────────────────────────────────────────────

func TestWindowCondition_Year(t *testing.T) {
	cond, err := windowCondition("date", repository.WindowYear, 1)
	require.NoError(t, err)
	assert.Equal(t, "EXTRACT(YEAR FROM date) = $1", cond)
}

func TestWindowCondition_Month(t *testing.T) {
	cond, err := windowCondition("s.date", repository.WindowMonth, 2)
	require.NoError(t, err)
	assert.Equal(t, "EXTRACT(YEAR FROM s.date) = $2 AND EXTRACT(MONTH FROM s.date) = $3", cond)
}

func TestWindowCondition_Day(t *testing.T) {
	cond, err := windowCondition("m.date", repository.WindowDay, 3)
	require.NoError(t, err)
	assert.Equal(t,
		"EXTRACT(YEAR FROM m.date) = $3 AND EXTRACT(MONTH FROM m.date) = $4 AND EXTRACT(DAY FROM m.date) = $5",
		cond)
}

func TestWindowCondition_VentanaInvalida(t *testing.T) {
	_, err := windowCondition("date", "week", 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestWindowArgs_CoincidenConLaVentana(t *testing.T) {
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, []any{2024}, windowArgs(repository.WindowYear, now))
	assert.Equal(t, []any{2024, 5}, windowArgs(repository.WindowMonth, now))
	assert.Equal(t, []any{2024, 5, 15}, windowArgs(repository.WindowDay, now))
}

// ──────────────────────────────────────────────────────────────────────────────
// SQL emitido por las consultas de analítica
// ──────────────────────────────────────────────────────────────────────────────

func TestSaleTotalForWindow_ExcluyeBatchYFiltraPorAnio(t *testing.T) {
	q := &recordingQuerier{rowData: [][]any{{decimal.NewFromInt(100)}}}
	repo := NewAnalyticsRepository(q)
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	total, err := repo.SaleTotalForWindow(context.Background(), repository.WindowYear, now)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(total))

	// Las ventas Batch quedan fuera de la suma y solo entra el año en curso.
	assert.Contains(t, q.lastSQL, "sale_type <> $1")
	assert.Contains(t, q.lastSQL, "EXTRACT(YEAR FROM date) = $2")
	assert.Equal(t, []any{entity.SaleTypeBatch, 2024}, q.lastArgs)
}

func TestTopProducts_ExcluyeBatchYUsage_OrdenDescendente(t *testing.T) {
	q := &recordingQuerier{rowData: [][]any{
		{"p1", 30, "Pan"},
		{"p2", 10, "Deleted Product"},
	}}
	repo := NewAnalyticsRepository(q)
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	rows, err := repo.TopProducts(context.Background(), repository.WindowYear, now)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, repository.TopProductResult{ProductID: "p1", TotalSold: 30, Name: "Pan"}, rows[0])
	assert.Equal(t, "Deleted Product", rows[1].Name)

	assert.Contains(t, q.lastSQL, "s.sale_type NOT IN ($1, $2)")
	assert.Contains(t, q.lastSQL, "LEFT JOIN stocks st ON st.id = s.product_id")
	assert.Contains(t, q.lastSQL, "COALESCE(MIN(st.name), 'Deleted Product')")
	assert.Contains(t, q.lastSQL, "ORDER BY total_sold DESC")
	assert.Equal(t, []any{entity.SaleTypeBatch, entity.SaleTypeUsage, 2024}, q.lastArgs)
}

func TestProducedAdjustments_SoloAjustesPositivosDeProducidos(t *testing.T) {
	q := &recordingQuerier{rowData: [][]any{{"Pan", 50}}}
	repo := NewAnalyticsRepository(q)
	now := time.Date(2024, 5, 15, 10, 0, 0, 0, time.UTC)

	rows, err := repo.ProducedAdjustments(context.Background(), repository.WindowMonth, now)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, repository.ProducedAdjustmentResult{Name: "Pan", TotalAdjustment: 50}, rows[0])

	assert.Contains(t, q.lastSQL, "st.type = $1")
	assert.Contains(t, q.lastSQL, "m.adjustment > 0")
	assert.Contains(t, q.lastSQL, "ORDER BY total_adjustment DESC")
	assert.Equal(t, []any{entity.StockTypeProduced, 2024, 5}, q.lastArgs)
}
