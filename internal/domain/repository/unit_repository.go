package repository

import "github.com/jhoicas/Distribucion-api/internal/domain/entity"

// UnitFilter filtros para listar equipos.
type UnitFilter struct {
	Status    string
	OwnerID   string
	ProductID string
}

// UnitRepository define el puerto de persistencia del ledger de equipos.
// Las mutaciones solo las invocan el motor de asignación y el de venta,
// nunca los handlers directamente.
type UnitRepository interface {
	Create(unit *entity.InventoryUnit) error
	GetByIMEI(imei string) (*entity.InventoryUnit, error)
	List(filter UnitFilter) ([]*entity.InventoryUnit, error)
	ListAll() ([]*entity.InventoryUnit, error)

	// TransitionCAS aplica la transición de estado guardada por el estado
	// esperado (compare-and-swap): UPDATE ... WHERE imei = $1 AND status = $expected.
	// Si ninguna fila cambia, el perdedor de la carrera recibe ErrAlreadySold
	// (el estado actual es SOLD) o ErrInvalidTransition (cualquier otro desfase).
	TransitionCAS(imei, expectedStatus, newStatus, newOwnerID string) error

	// RestoreCAS restaura el par (estado, dueño) previo al revertir una
	// asignación, guardado por el estado y dueño actuales del equipo.
	RestoreCAS(imei, expectedStatus, expectedOwnerID, priorStatus, priorOwnerID string) error
}
