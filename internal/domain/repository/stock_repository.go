package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// StockRepository define el puerto de persistencia para Stock.
// GetByID devuelve (nil, nil) si el registro no existe.
type StockRepository interface {
	Create(stock *entity.Stock) error
	GetByID(id string) (*entity.Stock, error)
	// List devuelve una página de stocks y el total de registros (find-and-count).
	List(limit, offset int) ([]*entity.Stock, int, error)
	Update(stock *entity.Stock) error
	Delete(id string) error
}
