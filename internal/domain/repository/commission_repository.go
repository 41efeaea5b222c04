package repository

import (
	"time"

	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
)

// CommissionFilter filtros para listar comisiones.
type CommissionFilter struct {
	BeneficiaryID string
	SaleID        string
	Status        string
}

// CommissionRepository define el puerto de persistencia para comisiones.
type CommissionRepository interface {
	CreateBatch(commissions []*entity.Commission) error
	GetByIDs(ids []string) ([]*entity.Commission, error)
	List(filter CommissionFilter) ([]*entity.Commission, error)
	ListAll() ([]*entity.Commission, error)
	// PayPending marca pending → paid para los IDs dados y devuelve las filas
	// resultantes de todos los IDs encontrados. Una comisión ya pagada es un
	// no-op (idempotente); una revertida no cambia.
	PayPending(ids []string, at time.Time) ([]*entity.Commission, error)
}
