package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest entrada para crear una venta.
// CreditDue viene como fecha "2006-01-02"; vacío = venta sin crédito.
type CreateSaleRequest struct {
	ProductID     string           `json:"product_id" form:"product_id"`
	FullName      string           `json:"full_name" form:"full_name"`
	Contact       string           `json:"contact" form:"contact"`
	Amount        decimal.Decimal  `json:"amount" form:"amount"`
	Quantity      int              `json:"quantity" form:"quantity"`
	PaymentMethod string           `json:"payment_method" form:"payment_method"`
	TotalAmount   decimal.Decimal  `json:"total_amount" form:"total_amount"`
	CreditDue     string           `json:"credit_due" form:"credit_due"`
	Credit        *decimal.Decimal `json:"credit" form:"credit"`
	TransactionID string           `json:"transaction_id" form:"transaction_id"`
	ReturnReason  string           `json:"return_reason" form:"return_reason"`
	SaleType      string           `json:"sale_type" form:"sale_type"`
}

// UpdateSaleRequest entrada para corregir una venta (campos opcionales).
type UpdateSaleRequest struct {
	FullName      *string          `json:"full_name"`
	Contact       *string          `json:"contact"`
	Amount        *decimal.Decimal `json:"amount"`
	Quantity      *int             `json:"quantity"`
	PaymentMethod *string          `json:"payment_method"`
	TotalAmount   *decimal.Decimal `json:"total_amount"`
	CreditDue     *string          `json:"credit_due"`
	Credit        *decimal.Decimal `json:"credit"`
	ReturnReason  *string          `json:"return_reason"`
	SaleType      *string          `json:"sale_type"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID            string           `json:"id"`
	ProductID     string           `json:"product_id"`
	FullName      string           `json:"full_name"`
	Contact       string           `json:"contact"`
	Amount        decimal.Decimal  `json:"amount"`
	Quantity      int              `json:"quantity"`
	PaymentMethod string           `json:"payment_method"`
	TotalAmount   decimal.Decimal  `json:"total_amount"`
	CreditDue     *time.Time       `json:"credit_due,omitempty"`
	Credit        *decimal.Decimal `json:"credit,omitempty"`
	Receipt       string           `json:"receipt,omitempty"`
	TransactionID string           `json:"transaction_id"`
	ReturnReason  string           `json:"return_reason,omitempty"`
	SaleType      string           `json:"sale_type"`
	Date          time.Time        `json:"date"`
}

// SaleListResponse lista paginada de ventas.
type SaleListResponse struct {
	Data []SaleResponse `json:"data"`
	Page PageResponse   `json:"page"`
}
