package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrCategoryConflict    = errors.New("el ítem ya existe con otra categoría")
	ErrInvalidQuantity     = errors.New("cantidad inválida")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrConstraintViolation = errors.New("violación de restricción de unicidad")
)
