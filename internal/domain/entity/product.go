package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto. Los teléfonos se rastrean por IMEI (InventoryUnit);
// los accesorios se venden por cantidad contra el stock del producto.
const (
	ProductCategoryPhone     = "phone"
	ProductCategoryAccessory = "accessory"
)

// Product representa un modelo comercial (teléfono o accesorio).
type Product struct {
	ID            string
	Name          string
	Model         string
	Category      string // phone, accessory
	SellingPrice  decimal.Decimal
	Commission    CommissionConfig // valores por defecto para nuevos equipos
	StockQuantity int              // solo accesorios (no serializados)
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CommissionConfig define el reparto de comisión por venta de un equipo,
// un monto no negativo por nivel de la cadena de custodia.
type CommissionConfig struct {
	FieldOfficer    decimal.Decimal
	TeamLeader      decimal.Decimal
	RegionalManager decimal.Decimal
}

// Total devuelve la suma de los tres niveles.
func (c CommissionConfig) Total() decimal.Decimal {
	return c.FieldOfficer.Add(c.TeamLeader).Add(c.RegionalManager)
}

// Valid verifica que ningún monto sea negativo.
func (c CommissionConfig) Valid() bool {
	return !c.FieldOfficer.IsNegative() && !c.TeamLeader.IsNegative() && !c.RegionalManager.IsNegative()
}
