package repository

import (
	"time"

	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
)

// AllocationFilter filtros para listar asignaciones.
type AllocationFilter struct {
	IMEI    string
	FromID  string
	ToID    string
	BatchID string
	Status  string
}

// AllocationRepository define el puerto de persistencia para asignaciones.
// Cada registro es inmutable salvo la marca de reversión.
type AllocationRepository interface {
	Create(allocation *entity.Allocation) error
	GetByID(id string) (*entity.Allocation, error)
	// LatestByIMEI devuelve la asignación más reciente del equipo, revertida
	// o no; nil si el equipo nunca fue asignado.
	LatestByIMEI(imei string) (*entity.Allocation, error)
	List(filter AllocationFilter) ([]*entity.Allocation, error)
	ListAll() ([]*entity.Allocation, error)
	MarkReversed(id string, at time.Time) error
}
