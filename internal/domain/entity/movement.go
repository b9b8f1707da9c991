package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeModification = "Modification"
)

// Movement es una entrada inmutable de la bitácora de cambios de cantidad.
// Se crea solo como efecto de una actualización de Stock; nunca se edita
// por el flujo normal. Adjustment = cantidad nueva - cantidad anterior.
type Movement struct {
	ID         string
	ProductID  string // opcional: puede apuntar a un Stock ya eliminado
	Name       string
	Type       string
	Adjustment int
	Date       time.Time
	User       string // nombre visible del usuario que hizo el cambio
}
