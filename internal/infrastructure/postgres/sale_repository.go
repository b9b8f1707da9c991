package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleColumns = `id, product_id, full_name, contact, amount, quantity, payment_method,
		total_amount, credit_due, credit, COALESCE(receipt, ''), transaction_id,
		COALESCE(return_reason, ''), sale_type, date`

// Create persiste una nueva venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, product_id, full_name, contact, amount, quantity, payment_method,
			total_amount, credit_due, credit, receipt, transaction_id, return_reason, sale_type, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12, NULLIF($13, ''), $14, $15)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.ProductID, sale.FullName, sale.Contact, sale.Amount, sale.Quantity,
		sale.PaymentMethod, sale.TotalAmount, sale.CreditDue, sale.Credit, sale.Receipt,
		sale.TransactionID, sale.ReturnReason, sale.SaleType, sale.Date,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID. Devuelve (nil, nil) si no existe.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	row := r.q.QueryRow(context.Background(), query, id)
	sale, err := scanSale(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return sale, nil
}

// List devuelve una página de ventas ordenadas por fecha descendente y el total.
func (r *SaleRepo) List(limit, offset int) ([]*entity.Sale, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM sales`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	query := `SELECT ` + saleColumns + ` FROM sales ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	list, err := scanSales(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// FindByFullName busca ventas por nombre de cliente (substring, case-insensitive).
func (r *SaleRepo) FindByFullName(fullName string) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE full_name ILIKE '%' || $1 || '%' ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, fullName)
	if err != nil {
		return nil, fmt.Errorf("find sales by name: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// FindByDate devuelve las ventas cuya fecha calendario coincide con date.
func (r *SaleRepo) FindByDate(date time.Time) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE date::date = $1::date ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("find sales by date: %w", err)
	}
	defer rows.Close()
	return scanSales(rows)
}

// ListCredit devuelve las ventas con crédito pendiente distinto de cero.
func (r *SaleRepo) ListCredit() ([]*entity.Sale, int, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE credit IS NOT NULL AND credit <> 0 ORDER BY date DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, 0, fmt.Errorf("list credit sales: %w", err)
	}
	defer rows.Close()
	list, err := scanSales(rows)
	if err != nil {
		return nil, 0, err
	}
	return list, len(list), nil
}

// Update persiste todos los campos editables de la venta.
func (r *SaleRepo) Update(sale *entity.Sale) error {
	query := `
		UPDATE sales SET full_name = $2, contact = $3, amount = $4, quantity = $5,
			payment_method = $6, total_amount = $7, credit_due = $8, credit = $9,
			receipt = NULLIF($10, ''), return_reason = NULLIF($11, ''), sale_type = $12
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.FullName, sale.Contact, sale.Amount, sale.Quantity,
		sale.PaymentMethod, sale.TotalAmount, sale.CreditDue, sale.Credit,
		sale.Receipt, sale.ReturnReason, sale.SaleType,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una venta por ID. ErrNotFound si no existía.
func (r *SaleRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	err := row.Scan(
		&s.ID, &s.ProductID, &s.FullName, &s.Contact, &s.Amount, &s.Quantity,
		&s.PaymentMethod, &s.TotalAmount, &s.CreditDue, &s.Credit, &s.Receipt,
		&s.TransactionID, &s.ReturnReason, &s.SaleType, &s.Date,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanSales(rows pgx.Rows) ([]*entity.Sale, error) {
	var list []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, sale)
	}
	return list, rows.Err()
}
