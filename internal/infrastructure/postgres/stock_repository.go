package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

const stockColumns = `id, name, category, current_stock, price, reorder_level, location, type, COALESCE(product_image, '')`

// Create persiste un nuevo stock.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, name, category, current_stock, price, reorder_level, location, type, product_image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.Name, stock.Category, stock.CurrentStock, stock.Price,
		stock.ReorderLevel, stock.Location, stock.Type, stock.ProductImage,
	)
	if err != nil {
		return fmt.Errorf("insert stock: %w", err)
	}
	return nil
}

// GetByID obtiene un stock por ID. Devuelve (nil, nil) si no existe.
func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Category, &s.CurrentStock, &s.Price,
		&s.ReorderLevel, &s.Location, &s.Type, &s.ProductImage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// List devuelve una página de stocks y el total de registros.
func (r *StockRepo) List(limit, offset int) ([]*entity.Stock, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(), `SELECT COUNT(*) FROM stocks`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count stocks: %w", err)
	}

	query := `SELECT ` + stockColumns + ` FROM stocks ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.CurrentStock, &s.Price,
			&s.ReorderLevel, &s.Location, &s.Type, &s.ProductImage); err != nil {
			return nil, 0, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, total, rows.Err()
}

// Update persiste todos los campos del stock.
func (r *StockRepo) Update(stock *entity.Stock) error {
	query := `
		UPDATE stocks SET name = $2, category = $3, current_stock = $4, price = $5,
			reorder_level = $6, location = $7, type = $8, product_image = NULLIF($9, '')
		WHERE id = $1`
	tag, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.Name, stock.Category, stock.CurrentStock, stock.Price,
		stock.ReorderLevel, stock.Location, stock.Type, stock.ProductImage,
	)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un stock por ID. ErrNotFound si no existía.
// Los movimientos históricos que apuntan a este ID se conservan colgando.
func (r *StockRepo) Delete(id string) error {
	tag, err := r.q.Exec(context.Background(), `DELETE FROM stocks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
