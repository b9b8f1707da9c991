package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// sweepPageLimit tope de la página única con la que el barrido lee las ventas.
const sweepPageLimit = 500000

// NotificationUseCase casos de uso de notificaciones, incluido el barrido
// diario de créditos vencidos.
type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	saleRepo         repository.SaleRepository
	now              func() time.Time
}

// NewNotificationUseCase construye el caso de uso de notificaciones.
func NewNotificationUseCase(
	notificationRepo repository.NotificationRepository,
	saleRepo repository.SaleRepository,
	now func() time.Time,
) *NotificationUseCase {
	if now == nil {
		now = time.Now
	}
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		saleRepo:         saleRepo,
		now:              now,
	}
}

// Create da de alta una notificación manual con prioridad Normal por defecto.
func (uc *NotificationUseCase) Create(in dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	if in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}
	notification := &entity.Notification{
		ID:        uuid.New().String(),
		Message:   in.Message,
		Priority:  priority,
		CreatedAt: uc.now(),
	}
	if err := uc.notificationRepo.Create(notification); err != nil {
		return nil, err
	}
	return toNotificationResponse(notification), nil
}

// List devuelve todas las notificaciones ordenadas por fecha descendente.
func (uc *NotificationUseCase) List() ([]dto.NotificationResponse, error) {
	notifications, err := uc.notificationRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, *toNotificationResponse(n))
	}
	return out, nil
}

// GetByID devuelve una notificación o ErrNotFound.
func (uc *NotificationUseCase) GetByID(id string) (*dto.NotificationResponse, error) {
	notification, err := uc.notificationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, domain.ErrNotFound
	}
	return toNotificationResponse(notification), nil
}

// MarkAsRead marca una notificación como leída o no leída y sella ReadAt.
func (uc *NotificationUseCase) MarkAsRead(id string, isRead bool) (*dto.NotificationResponse, error) {
	notification, err := uc.notificationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, domain.ErrNotFound
	}

	notification.IsRead = isRead
	if isRead {
		readAt := uc.now()
		notification.ReadAt = &readAt
	} else {
		notification.ReadAt = nil
	}

	if err := uc.notificationRepo.Update(notification); err != nil {
		return nil, fmt.Errorf("actualizar notificación: %w", err)
	}
	return toNotificationResponse(notification), nil
}

// Delete elimina una notificación por id.
func (uc *NotificationUseCase) Delete(id string) error {
	return uc.notificationRepo.Delete(id)
}

// CheckCreditDue barre todas las ventas y crea una notificación de prioridad
// High por cada venta con fecha de vencimiento en el día calendario de hoy.
// Solo importa la fecha: el monto del crédito no se consulta. Devuelve cuántas
// notificaciones creó.
//
// El barrido no deduplica: correrlo dos veces el mismo día produce
// notificaciones duplicadas para los mismos créditos.
func (uc *NotificationUseCase) CheckCreditDue() (int, error) {
	sales, _, err := uc.saleRepo.List(sweepPageLimit, 0)
	if err != nil {
		return 0, fmt.Errorf("leer ventas para el barrido: %w", err)
	}

	today := uc.now()
	created := 0
	for _, sale := range sales {
		if sale.CreditDue == nil {
			continue
		}
		if !sameCalendarDay(*sale.CreditDue, today) {
			continue
		}
		notification := &entity.Notification{
			ID:        uuid.New().String(),
			Message:   fmt.Sprintf("%s's credit due today.", sale.FullName),
			Priority:  entity.PriorityHigh,
			CreatedAt: uc.now(),
		}
		if err := uc.notificationRepo.Create(notification); err != nil {
			return created, fmt.Errorf("crear notificación de crédito vencido: %w", err)
		}
		created++
	}
	return created, nil
}

// sameCalendarDay compara año, mes y día ignorando la hora.
func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func toNotificationResponse(n *entity.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		Priority:  n.Priority,
		CreatedAt: n.CreatedAt,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
	}
}
