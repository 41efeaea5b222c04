package commission

import (
	"time"

	"github.com/jhoicas/Distribucion-api/internal/application/dto"
	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// UseCase consulta y pago de comisiones derivadas de ventas.
type UseCase struct {
	repo repository.CommissionRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.CommissionRepository) *UseCase {
	return &UseCase{repo: repo}
}

// BulkPay marca pending → paid para los IDs dados. Pagar una comisión ya
// pagada es un no-op, no un error (idempotente en reintentos); una revertida
// no cambia de estado. Devuelve el estado resultante de cada comisión.
func (uc *UseCase) BulkPay(in dto.BulkPayRequest) ([]*dto.CommissionResponse, error) {
	if len(in.CommissionIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	rows, err := uc.repo.PayPending(in.CommissionIDs, time.Now())
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

// List lista comisiones por beneficiario, venta o estado.
func (uc *UseCase) List(filter repository.CommissionFilter) ([]*dto.CommissionResponse, error) {
	rows, err := uc.repo.List(filter)
	if err != nil {
		return nil, err
	}
	return toResponses(rows), nil
}

func toResponses(rows []*entity.Commission) []*dto.CommissionResponse {
	out := make([]*dto.CommissionResponse, 0, len(rows))
	for _, c := range rows {
		out = append(out, &dto.CommissionResponse{
			ID:            c.ID,
			SaleID:        c.SaleID,
			BeneficiaryID: c.BeneficiaryID,
			Role:          c.Role,
			Amount:        c.Amount,
			Status:        c.Status,
			CreatedAt:     c.CreatedAt,
			PaidAt:        c.PaidAt,
		})
	}
	return out
}
