package dto

import "github.com/shopspring/decimal"

// TotalResponse respuesta escalar para sumas agregadas.
type TotalResponse struct {
	Total decimal.Decimal `json:"total"`
}

// CountResponse respuesta escalar para conteos.
type CountResponse struct {
	Count int `json:"count"`
}

// SalesAndCreditResponse conteo de ventas del año y de ventas con crédito.
type SalesAndCreditResponse struct {
	TotalCount  int `json:"totalCount"`
	CreditCount int `json:"creditCount"`
}

// TopProductDTO fila del ranking de productos vendidos en un período.
type TopProductDTO struct {
	ProductID string `json:"productId"`
	TotalSold int    `json:"totalSold"`
	Name      string `json:"name"`
}

// TopProductListResponse página del ranking más el total de productos agregados.
type TopProductListResponse struct {
	Data  []TopProductDTO `json:"data"`
	Total int             `json:"total"`
}

// ProducedAdjustmentDTO total de ajustes positivos por producto producido.
type ProducedAdjustmentDTO struct {
	Name            string `json:"name"`
	TotalAdjustment int    `json:"totalAdjustment"`
}
