package allocation

import (
	"context"

	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la transición del ledger y el
// registro de asignación se apliquen juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		unitRepo repository.UnitRepository,
		allocRepo repository.AllocationRepository,
	) error) error
}
