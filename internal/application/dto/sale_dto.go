package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest venta de un teléfono (IMEI) o de un accesorio
// (product_id + quantity). DelegateFOID solo aplica cuando un admin vende en
// nombre de un field officer (venta delegada).
type CreateSaleRequest struct {
	IMEI             string          `json:"imei,omitempty"`
	ProductID        string          `json:"product_id,omitempty"`
	Quantity         int             `json:"quantity,omitempty"`
	DelegateFOID     string          `json:"delegate_fo_id,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	PaymentMethod    string          `json:"payment_method"` // cash, mpesa, bank_transfer
	PaymentReference string          `json:"payment_reference,omitempty"`
	ReceiptNumber    string          `json:"receipt_number,omitempty"`
}

// SaleResponse venta registrada con la foto de la cadena de custodia.
type SaleResponse struct {
	ID                string          `json:"id"`
	IMEI              string          `json:"imei,omitempty"`
	ProductID         string          `json:"product_id,omitempty"`
	Quantity          int             `json:"quantity"`
	SellerID          string          `json:"seller_id"`
	FieldOfficerID    string          `json:"field_officer_id,omitempty"`
	TeamLeaderID      string          `json:"team_leader_id,omitempty"`
	RegionalManagerID string          `json:"regional_manager_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	PaymentMethod     string          `json:"payment_method"`
	PaymentReference  string          `json:"payment_reference,omitempty"`
	ReceiptNumber     string          `json:"receipt_number,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ReserveUnitRequest reserva advisory de un equipo antes de cobrar.
type ReserveUnitRequest struct {
	IMEI string `json:"imei"`
}

// ReserveUnitResponse vencimiento de la reserva obtenida.
type ReserveUnitResponse struct {
	IMEI      string    `json:"imei"`
	ExpiresAt time.Time `json:"expires_at"`
}
