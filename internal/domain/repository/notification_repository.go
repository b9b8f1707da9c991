package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para Notification.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	GetByID(id string) (*entity.Notification, error)
	List() ([]*entity.Notification, error)
	Update(notification *entity.Notification) error
	Delete(id string) error
}
