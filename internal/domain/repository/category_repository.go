package repository

import "github.com/jhoicas/stockflow-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
// El catálogo es chico: List devuelve todo sin paginar.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Delete(id string) error
}
