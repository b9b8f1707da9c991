package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para Movement.
// Los movimientos son append-only: no existe Update.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// List devuelve una página de movimientos ordenados por fecha descendente y el total.
	List(limit, offset int) ([]*entity.Movement, int, error)
	Delete(id string) error
}
