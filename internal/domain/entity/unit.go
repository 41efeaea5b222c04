package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un equipo. SOLD es terminal: un equipo vendido
// no vuelve a ALLOCATED ni a IN_STOCK.
const (
	UnitStatusInStock   = "IN_STOCK"
	UnitStatusAllocated = "ALLOCATED"
	UnitStatusSold      = "SOLD"
)

// Financieras upstream que originan el stock.
const (
	SourceWatu  = "watu"
	SourceMogo  = "mogo"
	SourceOnfon = "onfon"
)

// InventoryUnit representa un equipo físico identificado por IMEI.
// CurrentOwnerID siempre es consistente con la asignación más reciente;
// para IN_STOCK el dueño es el centinela WarehouseActorID.
type InventoryUnit struct {
	IMEI           string // clave primaria
	ProductID      string
	Status         string // IN_STOCK, ALLOCATED, SOLD
	CurrentOwnerID string // último custodio; se conserva tras la venta para auditoría
	SellingPrice   decimal.Decimal
	Commission     CommissionConfig
	Source         string // watu, mogo, onfon
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsSold indica si el equipo alcanzó el estado terminal.
func (u *InventoryUnit) IsSold() bool {
	return u.Status == UnitStatusSold
}

// IsValidSource valida la financiera de origen.
func IsValidSource(s string) bool {
	switch s {
	case SourceWatu, SourceMogo, SourceOnfon:
		return true
	}
	return false
}
