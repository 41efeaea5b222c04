package entity

import "time"

// Estados de un Actor. Los actores nunca se eliminan físicamente: se
// desactivan para preservar la integridad de ventas y comisiones históricas.
const (
	ActorStatusActive   = "active"
	ActorStatusInactive = "inactive"
)

// WarehouseActorID es el pseudo-dueño centinela de los equipos IN_STOCK.
// Modela la custodia implícita del admin/bodega sin filas con dueño nulo.
const WarehouseActorID = "warehouse"

// Actor representa una persona dentro de la jerarquía de distribución
// (admin, regional_manager, team_leader o field_officer).
type Actor struct {
	ID           string
	Name         string
	Phone        string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // ver role.go
	Region       string // obligatoria para roles debajo de admin
	ParentID     string // TL → su RM, FO → su TL; vacío para admin y RM
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive indica si el actor puede operar (asignar, vender, cobrar).
func (a *Actor) IsActive() bool {
	return a.Status == ActorStatusActive
}
