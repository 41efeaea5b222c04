package entity

import "time"

// Estados de una asignación.
const (
	AllocationStatusPending   = "pending"
	AllocationStatusCompleted = "completed"
	AllocationStatusReversed  = "reversed"
)

// Allocation es el registro inmutable de una transferencia de custodia de un
// equipo. PriorOwnerID/PriorStatus capturan el estado inmediatamente anterior
// del equipo al crearse la asignación: son lo que una reversión restaura, de
// modo que el historial por equipo forma una cadena trazable y no un log plano.
type Allocation struct {
	ID           string
	BatchID      string // agrupa asignaciones masivas; igual al ID en asignación simple
	IMEI         string
	FromID       string
	FromRole     string
	ToID         string
	ToRole       string
	PriorOwnerID string
	PriorStatus  string
	Status       string // pending, completed, reversed
	CreatedAt    time.Time
	CreatedBy    string
	ReversedAt   *time.Time
}
