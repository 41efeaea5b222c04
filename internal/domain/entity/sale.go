package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago. Los métodos electrónicos exigen referencia de pago
// (regla de política, no de esquema: reconciliación la detecta si falta).
const (
	PaymentMethodCash         = "cash"
	PaymentMethodMpesa        = "mpesa"
	PaymentMethodBankTransfer = "bank_transfer"
)

// IsElectronicPayment indica si el método exige referencia de pago.
func IsElectronicPayment(method string) bool {
	return method == PaymentMethodMpesa || method == PaymentMethodBankTransfer
}

// Sale es el registro inmutable de una transacción completada. Para teléfonos
// referencia un IMEI; para accesorios un producto y cantidad. Los campos
// FO/TL/RM son la foto de la cadena de custodia al momento de la venta:
// reasignaciones posteriores del field officer no alteran la atribución.
type Sale struct {
	ID                string
	IMEI              string // vacío en venta de accesorio
	ProductID         string
	Quantity          int    // 1 para teléfonos
	SellerID          string // vendedor efectivo
	FieldOfficerID    string
	TeamLeaderID      string
	RegionalManagerID string
	Amount            decimal.Decimal
	PaymentMethod     string // cash, mpesa, bank_transfer
	PaymentReference  string // obligatoria por política en métodos electrónicos
	ReceiptNumber     string
	CreatedAt         time.Time
	CreatedBy         string
}
