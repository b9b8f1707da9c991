package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de venta. Batch y Usage se excluyen de las agregaciones de ventas reales.
const (
	SaleTypeNormal = "Normal"
	SaleTypeBatch  = "Batch"
	SaleTypeUsage  = "Usage"
)

// Sale representa una transacción de venta (o devolución) de un producto.
// ProductID puede quedar colgando si el Stock referenciado se elimina; se tolera.
type Sale struct {
	ID            string
	ProductID     string
	FullName      string
	Contact       string
	Amount        decimal.Decimal
	Quantity      int
	PaymentMethod string
	TotalAmount   decimal.Decimal
	CreditDue     *time.Time // opcional: fecha de vencimiento del crédito
	Credit        *decimal.Decimal
	Receipt       string // opcional: nombre de archivo del comprobante
	TransactionID string
	ReturnReason  string
	SaleType      string
	Date          time.Time
}

// HasCredit indica si la venta lleva crédito pendiente distinto de cero.
func (s *Sale) HasCredit() bool {
	return s.Credit != nil && !s.Credit.IsZero()
}
