package stock

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Distribucion-api/internal/application/dto"
	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// UseCase recepción de stock y consultas del ledger de equipos.
type UseCase struct {
	unitRepo    repository.UnitRepository
	productRepo repository.ProductRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(unitRepo repository.UnitRepository, productRepo repository.ProductRepository) *UseCase {
	return &UseCase{unitRepo: unitRepo, productRepo: productRepo}
}

// Intake registra equipos recibidos: cada IMEI entra IN_STOCK a custodia del
// centinela de bodega. Un IMEI duplicado se reporta en su ítem sin abortar
// el resto del lote.
func (uc *UseCase) Intake(in dto.IntakeUnitsRequest) ([]dto.IntakeItemResult, error) {
	if in.ProductID == "" || len(in.IMEIs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.IsValidSource(in.Source) {
		return nil, domain.ErrInvalidInput
	}
	commission := entity.CommissionConfig{
		FieldOfficer:    in.Commission.FieldOfficer,
		TeamLeader:      in.Commission.TeamLeader,
		RegionalManager: in.Commission.RegionalManager,
	}
	if !commission.Valid() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.Category != entity.ProductCategoryPhone {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	results := make([]dto.IntakeItemResult, 0, len(in.IMEIs))
	for _, imei := range in.IMEIs {
		if imei == "" {
			results = append(results, dto.IntakeItemResult{IMEI: imei, Error: domain.ErrInvalidInput.Error()})
			continue
		}
		unit := &entity.InventoryUnit{
			IMEI:           imei,
			ProductID:      in.ProductID,
			Status:         entity.UnitStatusInStock,
			CurrentOwnerID: entity.WarehouseActorID,
			SellingPrice:   in.SellingPrice,
			Commission:     commission,
			Source:         in.Source,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := uc.unitRepo.Create(unit); err != nil {
			results = append(results, dto.IntakeItemResult{IMEI: imei, Error: err.Error()})
			continue
		}
		results = append(results, dto.IntakeItemResult{IMEI: imei, OK: true})
	}
	return results, nil
}

// ListUnits lista equipos con filtros de estado, dueño y producto.
func (uc *UseCase) ListUnits(filter repository.UnitFilter) ([]*dto.UnitResponse, error) {
	units, err := uc.unitRepo.List(filter)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UnitResponse, 0, len(units))
	for _, u := range units {
		out = append(out, ToUnitResponse(u))
	}
	return out, nil
}

// GetUnit obtiene un equipo por IMEI.
func (uc *UseCase) GetUnit(imei string) (*dto.UnitResponse, error) {
	unit, err := uc.unitRepo.GetByIMEI(imei)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	return ToUnitResponse(unit), nil
}

// CreateProduct alta de producto (teléfono o accesorio).
func (uc *UseCase) CreateProduct(in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Category != entity.ProductCategoryPhone && in.Category != entity.ProductCategoryAccessory {
		return nil, domain.ErrInvalidInput
	}
	if in.StockQuantity < 0 || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Model:        in.Model,
		Category:     in.Category,
		SellingPrice: in.SellingPrice,
		Commission: entity.CommissionConfig{
			FieldOfficer:    in.Commission.FieldOfficer,
			TeamLeader:      in.Commission.TeamLeader,
			RegionalManager: in.Commission.RegionalManager,
		},
		StockQuantity: in.StockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// ListProducts lista productos, opcionalmente por categoría.
func (uc *UseCase) ListProducts(category string) ([]*entity.Product, error) {
	return uc.productRepo.List(category)
}

// ToUnitResponse mapea la entidad al DTO expuesto.
func ToUnitResponse(u *entity.InventoryUnit) *dto.UnitResponse {
	if u == nil {
		return nil
	}
	return &dto.UnitResponse{
		IMEI:           u.IMEI,
		ProductID:      u.ProductID,
		Status:         u.Status,
		CurrentOwnerID: u.CurrentOwnerID,
		SellingPrice:   u.SellingPrice,
		Commission: dto.CommissionConfigDTO{
			FieldOfficer:    u.Commission.FieldOfficer,
			TeamLeader:      u.Commission.TeamLeader,
			RegionalManager: u.Commission.RegionalManager,
		},
		Source:    u.Source,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
