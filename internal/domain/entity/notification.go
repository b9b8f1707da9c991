package entity

import "time"

// Prioridades de notificación.
const (
	PriorityHigh   = "High"
	PriorityNormal = "Normal"
)

// Notification es un mensaje generado por el sistema para los operadores
// (alerta de stock bajo, crédito por vencer).
type Notification struct {
	ID        string
	Message   string
	Priority  string
	CreatedAt time.Time
	IsRead    bool
	ReadAt    *time.Time
}
