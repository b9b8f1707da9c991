package dto

import "time"

// CreateNotificationRequest entrada para crear una notificación manual.
type CreateNotificationRequest struct {
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// MarkReadRequest entrada para marcar una notificación como leída/no leída.
type MarkReadRequest struct {
	IsRead bool `json:"isRead"`
}

// NotificationResponse salida de una notificación.
type NotificationResponse struct {
	ID        string     `json:"id"`
	Message   string     `json:"message"`
	Priority  string     `json:"priority"`
	CreatedAt time.Time  `json:"createdAt"`
	IsRead    bool       `json:"isRead"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
}
