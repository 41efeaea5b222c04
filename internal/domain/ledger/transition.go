package ledger

import (
	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
)

// Validate aplica la máquina de estados del equipo antes de mutar el ledger:
//
//	IN_STOCK  → ALLOCATED  (requiere nuevo dueño real, no el centinela)
//	ALLOCATED → ALLOCATED  (re-asignación a otro custodio)
//	ALLOCATED → SOLD       (terminal; el último custodio queda para auditoría)
//	IN_STOCK  → SOLD       (venta directa del admin)
//
// Cualquier salida de SOLD retorna ErrAlreadySold. Volver a IN_STOCK no está
// permitido por esta vía: solo la reversión de una asignación restaura el
// estado anterior, y lo hace con su propio guard CAS en el repositorio.
func Validate(current, next, newOwnerID string) error {
	if current == entity.UnitStatusSold {
		return domain.ErrAlreadySold
	}
	switch next {
	case entity.UnitStatusAllocated:
		if newOwnerID == "" || newOwnerID == entity.WarehouseActorID {
			return domain.ErrInvalidInput
		}
		if current != entity.UnitStatusInStock && current != entity.UnitStatusAllocated {
			return domain.ErrInvalidTransition
		}
	case entity.UnitStatusSold:
		if current != entity.UnitStatusInStock && current != entity.UnitStatusAllocated {
			return domain.ErrInvalidTransition
		}
	case entity.UnitStatusInStock:
		return domain.ErrInvalidTransition
	default:
		return domain.ErrInvalidInput
	}
	return nil
}
