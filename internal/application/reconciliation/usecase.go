package reconciliation

import (
	"github.com/jhoicas/Distribucion-api/internal/domain/reconciliation"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// UseCase carga el historial completo (ledger, ventas, comisiones,
// asignaciones) y corre el detector puro de discrepancias. Solo lectura:
// nunca muta nada.
type UseCase struct {
	unitRepo       repository.UnitRepository
	saleRepo       repository.SaleRepository
	commissionRepo repository.CommissionRepository
	allocRepo      repository.AllocationRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	unitRepo repository.UnitRepository,
	saleRepo repository.SaleRepository,
	commissionRepo repository.CommissionRepository,
	allocRepo repository.AllocationRepository,
) *UseCase {
	return &UseCase{
		unitRepo:       unitRepo,
		saleRepo:       saleRepo,
		commissionRepo: commissionRepo,
		allocRepo:      allocRepo,
	}
}

// Run ejecuta la pasada de reconciliación sobre el estado actual.
func (uc *UseCase) Run() ([]reconciliation.Discrepancy, error) {
	units, err := uc.unitRepo.ListAll()
	if err != nil {
		return nil, err
	}
	sales, err := uc.saleRepo.ListAll()
	if err != nil {
		return nil, err
	}
	commissions, err := uc.commissionRepo.ListAll()
	if err != nil {
		return nil, err
	}
	allocations, err := uc.allocRepo.ListAll()
	if err != nil {
		return nil, err
	}
	return reconciliation.Detect(units, sales, commissions, allocations), nil
}
