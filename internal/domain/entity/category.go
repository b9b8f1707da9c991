package entity

// Category categoría de productos; catálogo plano referenciado por nombre
// desde Stock.
type Category struct {
	ID   string
	Name string
}
