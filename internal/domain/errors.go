package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrActorNotFound      = errors.New("actor no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// Errores del motor de asignación y venta.
	ErrHierarchyViolation   = errors.New("transferencia fuera de la jerarquía permitida")
	ErrInvalidHierarchy     = errors.New("jerarquía inválida para el actor")
	ErrNotOwner             = errors.New("el actor no tiene custodia del equipo")
	ErrAlreadySold          = errors.New("el equipo ya fue vendido")
	ErrNotAuthorizedToSell  = errors.New("el actor no está autorizado a vender este equipo")
	ErrInvalidTransition    = errors.New("transición de estado inválida")
	ErrAllocationNotCurrent = errors.New("la asignación no es la vigente del equipo")
	ErrUnitReserved         = errors.New("el equipo está reservado por otra venta en curso")
)
