package reconciliation

import (
	"fmt"

	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
)

// Tipos de discrepancia detectables.
const (
	TypeIMEIMismatch   = "imei_mismatch"   // equipo SOLD sin venta correspondiente
	TypeDoubleSale     = "double_sale"     // más de una venta para el mismo IMEI
	TypeMissingPayment = "missing_payment" // pago electrónico sin referencia
	TypeMissingReceipt = "missing_receipt" // venta sin número de recibo
)

// Severidades (informativas: no bloquean ninguna operación).
const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
)

// Discrepancy describe una inconsistencia entre ledger, ventas y comisiones.
type Discrepancy struct {
	Type     string `json:"type"`
	Severity string `json:"severity"`
	IMEI     string `json:"imei,omitempty"`
	SaleID   string `json:"sale_id,omitempty"`
	Detail   string `json:"detail"`
}

// Detect es una pasada de solo lectura sobre el historial completo. Tolera
// datos parciales: un campo correlacionante ausente se trata como
// "no verificable", nunca como pánico ni error. El resultado queda agrupado
// por tipo en el orden en que se declaran los chequeos.
func Detect(
	units []*entity.InventoryUnit,
	sales []*entity.Sale,
	commissions []*entity.Commission,
	allocations []*entity.Allocation,
) []Discrepancy {
	_ = commissions // correlación reservada para chequeos futuros de comisión
	_ = allocations

	salesByIMEI := make(map[string][]*entity.Sale)
	for _, s := range sales {
		if s == nil || s.IMEI == "" {
			continue
		}
		salesByIMEI[s.IMEI] = append(salesByIMEI[s.IMEI], s)
	}

	var out []Discrepancy

	// imei_mismatch: equipo vendido en el ledger sin venta registrada.
	for _, u := range units {
		if u == nil || u.IMEI == "" || u.Status != entity.UnitStatusSold {
			continue
		}
		if len(salesByIMEI[u.IMEI]) == 0 {
			out = append(out, Discrepancy{
				Type:     TypeIMEIMismatch,
				Severity: SeverityHigh,
				IMEI:     u.IMEI,
				Detail:   "equipo SOLD sin registro de venta",
			})
		}
	}

	// double_sale: más de una venta referencia el mismo equipo.
	for imei, list := range salesByIMEI {
		if len(list) > 1 {
			out = append(out, Discrepancy{
				Type:     TypeDoubleSale,
				Severity: SeverityHigh,
				IMEI:     imei,
				Detail:   fmt.Sprintf("%d ventas registradas para el mismo IMEI", len(list)),
			})
		}
	}

	// missing_payment: método electrónico sin referencia de pago.
	for _, s := range sales {
		if s == nil {
			continue
		}
		if entity.IsElectronicPayment(s.PaymentMethod) && s.PaymentReference == "" {
			out = append(out, Discrepancy{
				Type:     TypeMissingPayment,
				Severity: SeverityMedium,
				IMEI:     s.IMEI,
				SaleID:   s.ID,
				Detail:   "pago " + s.PaymentMethod + " sin referencia",
			})
		}
	}

	// missing_receipt: venta sin número de recibo.
	for _, s := range sales {
		if s == nil {
			continue
		}
		if s.ReceiptNumber == "" {
			out = append(out, Discrepancy{
				Type:     TypeMissingReceipt,
				Severity: SeverityMedium,
				IMEI:     s.IMEI,
				SaleID:   s.ID,
				Detail:   "venta sin número de recibo",
			})
		}
	}

	return out
}
