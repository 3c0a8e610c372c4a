package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// Ciclo de período (Guardado/Revisado).
	ErrDuplicatePeriod = errors.New("ya existe un reporte para esta fecha")
	ErrInventoryLocked = errors.New("el inventario está bloqueado hasta la revisión")
	ErrInventoryOpen   = errors.New("el inventario no está bloqueado")

	// Reportes y administración.
	ErrRangeTooWide = errors.New("el rango no puede ser mayor a 8 días")
	ErrRoleInUse    = errors.New("no se puede eliminar un rol en uso")
)
