package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BulkPayRequest pago masivo de comisiones pendientes.
type BulkPayRequest struct {
	CommissionIDs []string `json:"commission_ids"`
}

// CommissionResponse comisión derivada de una venta.
type CommissionResponse struct {
	ID            string          `json:"id"`
	SaleID        string          `json:"sale_id"`
	BeneficiaryID string          `json:"beneficiary_id,omitempty"`
	Role          string          `json:"role"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
}
