package dto

// CreateCategoryRequest entrada para crear una categoría.
type CreateCategoryRequest struct {
	Category string `json:"category"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID       string `json:"id"`
	Category string `json:"category"`
}
