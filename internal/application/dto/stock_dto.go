package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionConfigDTO reparto de comisión por nivel.
type CommissionConfigDTO struct {
	FieldOfficer    decimal.Decimal `json:"field_officer"`
	TeamLeader      decimal.Decimal `json:"team_leader"`
	RegionalManager decimal.Decimal `json:"regional_manager"`
}

// IntakeUnitsRequest recepción de stock: equipos nuevos entran IN_STOCK a
// custodia de bodega. Un IMEI duplicado se reporta por ítem, no aborta el lote.
type IntakeUnitsRequest struct {
	ProductID    string              `json:"product_id"`
	IMEIs        []string            `json:"imeis"`
	SellingPrice decimal.Decimal     `json:"selling_price"`
	Commission   CommissionConfigDTO `json:"commission"`
	Source       string              `json:"source"` // watu, mogo, onfon
}

// IntakeItemResult resultado por IMEI de una recepción de stock.
type IntakeItemResult struct {
	IMEI  string `json:"imei"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// UnitResponse equipo expuesto por la API.
type UnitResponse struct {
	IMEI           string              `json:"imei"`
	ProductID      string              `json:"product_id"`
	Status         string              `json:"status"`
	CurrentOwnerID string              `json:"current_owner_id"`
	SellingPrice   decimal.Decimal     `json:"selling_price"`
	Commission     CommissionConfigDTO `json:"commission"`
	Source         string              `json:"source"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// CreateProductRequest alta de un producto (teléfono o accesorio).
type CreateProductRequest struct {
	Name          string              `json:"name"`
	Model         string              `json:"model"`
	Category      string              `json:"category"` // phone, accessory
	SellingPrice  decimal.Decimal     `json:"selling_price"`
	Commission    CommissionConfigDTO `json:"commission"`
	StockQuantity int                 `json:"stock_quantity"` // solo accesorios
}
