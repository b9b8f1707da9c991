package dto

import "time"

// CreateMovementRequest entrada para registrar un movimiento manual.
type CreateMovementRequest struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Adjustment int    `json:"adjustment"`
	User       string `json:"user"`
}

// MovementResponse salida de un movimiento.
type MovementResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id,omitempty"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	Adjustment int       `json:"adjustment"`
	Date       time.Time `json:"date"`
	User       string    `json:"user"`
}

// MovementListResponse lista paginada de movimientos.
type MovementListResponse struct {
	Data []MovementResponse `json:"data"`
	Page PageResponse       `json:"page"`
}
