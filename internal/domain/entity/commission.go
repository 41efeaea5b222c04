package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una comisión.
const (
	CommissionStatusPending  = "pending"
	CommissionStatusPaid     = "paid"
	CommissionStatusReversed = "reversed"
)

// Commission es una fila derivada por venta y por beneficiario de la cadena
// de custodia. BeneficiaryID puede quedar vacío bajo la política "withhold"
// (nivel ausente retenido para ajuste manual).
type Commission struct {
	ID            string
	SaleID        string
	BeneficiaryID string
	Role          string // field_officer, team_leader, regional_manager
	Amount        decimal.Decimal
	Status        string // pending, paid, reversed
	CreatedAt     time.Time
	PaidAt        *time.Time
}
