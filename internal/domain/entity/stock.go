package entity

import "github.com/shopspring/decimal"

// Tipos de stock.
const (
	StockTypeFinished = "Finished Product"
	StockTypeProduced = "Produced Product"
	StockTypeRaw      = "Raw Material"
)

// Stock representa un producto del inventario con su cantidad en existencia
// y su nivel de reposición. Es la autoridad sobre la cantidad actual.
type Stock struct {
	ID           string
	Name         string
	Category     string
	CurrentStock int
	Price        decimal.Decimal
	ReorderLevel int
	Location     string
	Type         string // Finished Product (default), Produced Product, Raw Material
	ProductImage string // opcional: nombre de archivo en el file store
}
