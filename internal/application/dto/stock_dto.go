package dto

import "github.com/shopspring/decimal"

// CreateStockRequest entrada para crear un stock.
type CreateStockRequest struct {
	Name         string          `json:"name" form:"name"`
	Category     string          `json:"category" form:"category"`
	CurrentStock int             `json:"current_stock" form:"current_stock"`
	Price        decimal.Decimal `json:"price" form:"price"`
	ReorderLevel int             `json:"reorder_level" form:"reorder_level"`
	Location     string          `json:"location" form:"location"`
	Type         string          `json:"type" form:"type"`
}

// UpdateStockRequest entrada para el flujo de ajuste de stock.
// CurrentStock y ReorderLevel son obligatorios: de ellos sale el delta del
// movimiento y la condición de stock bajo. El resto es opcional.
type UpdateStockRequest struct {
	Name         *string          `json:"name" form:"name"`
	Category     *string          `json:"category" form:"category"`
	CurrentStock *int             `json:"current_stock" form:"current_stock"`
	Price        *decimal.Decimal `json:"price" form:"price"`
	ReorderLevel *int             `json:"reorder_level" form:"reorder_level"`
	Location     *string          `json:"location" form:"location"`
	Type         *string          `json:"type" form:"type"`
}

// StockResponse salida de un stock.
type StockResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CurrentStock int             `json:"current_stock"`
	Price        decimal.Decimal `json:"price"`
	ReorderLevel int             `json:"reorder_level"`
	Location     string          `json:"location"`
	Type         string          `json:"type"`
	ProductImage string          `json:"product_image,omitempty"`
}

// StockListResponse lista paginada de stocks.
type StockListResponse struct {
	Data []StockResponse `json:"data"`
	Page PageResponse    `json:"page"`
}
