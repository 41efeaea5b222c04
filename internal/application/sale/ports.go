package sale

import (
	"context"
	"time"

	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// TxRunner ejecuta el cierre de venta en una transacción: transición del
// equipo a SOLD, registro de la venta y filas de comisión, juntos o ninguno.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		unitRepo repository.UnitRepository,
		saleRepo repository.SaleRepository,
		commissionRepo repository.CommissionRepository,
		productRepo repository.ProductRepository,
	) error) error
}

// Reserver es la reserva advisory de un equipo durante el flujo de venta:
// un lock de vida corta (TTL) para dar feedback rápido entre vendedores
// concurrentes. Es una optimización de UX, nunca la autoridad: el guard CAS
// del ledger decide aunque la reserva se salte o expire.
type Reserver interface {
	// Reserve toma la reserva para actorID; ErrUnitReserved si otro la tiene.
	Reserve(ctx context.Context, imei, actorID string) (expiresAt time.Time, err error)
	// HeldBy devuelve el actor que tiene la reserva, o "" si está libre.
	HeldBy(ctx context.Context, imei string) (string, error)
	// Release libera la reserva si actorID la posee.
	Release(ctx context.Context, imei, actorID string) error
}
