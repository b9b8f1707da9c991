package repository

import (
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	GetByID(id string) (*entity.Sale, error)
	// List devuelve una página de ventas ordenadas por fecha descendente y el total.
	List(limit, offset int) ([]*entity.Sale, int, error)
	// FindByFullName busca por nombre de cliente (substring, case-insensitive).
	FindByFullName(fullName string) ([]*entity.Sale, error)
	// FindByDate devuelve las ventas cuya fecha calendario coincide con date.
	FindByDate(date time.Time) ([]*entity.Sale, error)
	// ListCredit devuelve las ventas con crédito pendiente distinto de cero.
	ListCredit() ([]*entity.Sale, int, error)
	Update(sale *entity.Sale) error
	Delete(id string) error
}
