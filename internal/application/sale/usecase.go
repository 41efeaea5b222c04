package sale

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Distribucion-api/internal/application/dto"
	"github.com/jhoicas/Distribucion-api/internal/domain"
	commissiondom "github.com/jhoicas/Distribucion-api/internal/domain/commission"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/hierarchy"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// UseCase es el motor de elegibilidad de venta y derivación de comisiones.
type UseCase struct {
	txRunner      TxRunner
	actorRepo     repository.ActorRepository
	unitRepo      repository.UnitRepository
	productRepo   repository.ProductRepository
	reserver      Reserver // opcional: nil desactiva la reserva advisory
	missingPolicy string   // política para niveles ausentes de la cadena
}

// NewUseCase construye el motor de venta. missingPolicy es una de las
// políticas de commission (omit, escalate, withhold).
func NewUseCase(
	txRunner TxRunner,
	actorRepo repository.ActorRepository,
	unitRepo repository.UnitRepository,
	productRepo repository.ProductRepository,
	reserver Reserver,
	missingPolicy string,
) *UseCase {
	if !commissiondom.IsValidPolicy(missingPolicy) {
		missingPolicy = commissiondom.PolicyOmit
	}
	return &UseCase{
		txRunner:      txRunner,
		actorRepo:     actorRepo,
		unitRepo:      unitRepo,
		productRepo:   productRepo,
		reserver:      reserver,
		missingPolicy: missingPolicy,
	}
}

// AuthorizeSale decide si el vendedor puede vender el equipo:
//   - FO/TL/RM: el equipo debe estar ALLOCATED a su custodia
//   - admin sin delegado: el equipo debe estar IN_STOCK
//   - admin en nombre de un FO (venta delegada): ALLOCATED a ese FO
//
// Cualquier violación → ErrNotAuthorizedToSell.
func AuthorizeSale(seller, delegate *entity.Actor, unit *entity.InventoryUnit) error {
	if seller == nil || unit == nil {
		return domain.ErrInvalidInput
	}
	if unit.IsSold() {
		return domain.ErrAlreadySold
	}
	capability, ok := entity.CapabilityFor(seller.Role)
	if !ok {
		return domain.ErrNotAuthorizedToSell
	}
	if seller.Role == entity.RoleAdmin {
		if delegate == nil {
			if !capability.SellsFromStock || unit.Status != entity.UnitStatusInStock {
				return domain.ErrNotAuthorizedToSell
			}
			return nil
		}
		if delegate.Role != entity.RoleFieldOfficer {
			return domain.ErrNotAuthorizedToSell
		}
		if unit.Status != entity.UnitStatusAllocated || unit.CurrentOwnerID != delegate.ID {
			return domain.ErrNotAuthorizedToSell
		}
		return nil
	}
	if !capability.SellsAllocated {
		return domain.ErrNotAuthorizedToSell
	}
	if unit.Status != entity.UnitStatusAllocated || unit.CurrentOwnerID != seller.ID {
		return domain.ErrNotAuthorizedToSell
	}
	return nil
}

// CompleteSale autoriza y cierra la venta: en una sola transacción pasa el
// equipo a SOLD (guard CAS por estado esperado: dos intentos concurrentes
// producen exactamente un ganador y un ErrAlreadySold), registra la venta con
// la foto de la cadena de custodia y deriva las comisiones en pending.
// Reintentar una venta ya cerrada observa ErrAlreadySold sin filas nuevas.
func (uc *UseCase) CompleteSale(ctx context.Context, sellerID string, in dto.CreateSaleRequest) (*entity.Sale, error) {
	if in.IMEI == "" {
		return uc.completeAccessorySale(ctx, sellerID, in)
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !validPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}

	seller, err := uc.actorRepo.GetByID(sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrActorNotFound
	}
	if !seller.IsActive() {
		return nil, domain.ErrForbidden
	}

	var delegate *entity.Actor
	if in.DelegateFOID != "" {
		if seller.Role != entity.RoleAdmin {
			return nil, domain.ErrNotAuthorizedToSell
		}
		delegate, err = uc.actorRepo.GetByID(in.DelegateFOID)
		if err != nil {
			return nil, err
		}
		if delegate == nil {
			return nil, domain.ErrActorNotFound
		}
	}

	unit, err := uc.unitRepo.GetByIMEI(in.IMEI)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if err := AuthorizeSale(seller, delegate, unit); err != nil {
		return nil, err
	}

	// Reserva advisory: si otro vendedor tiene el equipo reservado damos
	// feedback inmediato. El CAS de abajo sigue siendo la autoridad.
	if uc.reserver != nil {
		holder, _ := uc.reserver.HeldBy(ctx, in.IMEI)
		if holder != "" && holder != sellerID {
			return nil, domain.ErrUnitReserved
		}
	}

	// Vendedor efectivo: el FO delegado en venta delegada, si no el vendedor.
	effective := seller
	if delegate != nil {
		effective = delegate
	}

	// Foto de la cadena de custodia al momento de la venta: la atribución de
	// comisiones no cambia con reasignaciones posteriores.
	actors, err := uc.actorRepo.ListAll()
	if err != nil {
		return nil, err
	}
	tree := hierarchy.NewTree(actors)
	var chain commissiondom.Chain
	if effective.Role != entity.RoleAdmin {
		chain = commissiondom.ResolveChain(tree, tree.Get(effective.ID))
	}

	now := time.Now()
	s := &entity.Sale{
		ID:               uuid.New().String(),
		IMEI:             in.IMEI,
		ProductID:        unit.ProductID,
		Quantity:         1,
		SellerID:         effective.ID,
		Amount:           in.Amount,
		PaymentMethod:    in.PaymentMethod,
		PaymentReference: in.PaymentReference,
		ReceiptNumber:    in.ReceiptNumber,
		CreatedAt:        now,
		CreatedBy:        sellerID,
	}
	if chain.FieldOfficer != nil {
		s.FieldOfficerID = chain.FieldOfficer.ID
	}
	if chain.TeamLeader != nil {
		s.TeamLeaderID = chain.TeamLeader.ID
	}
	if chain.RegionalManager != nil {
		s.RegionalManagerID = chain.RegionalManager.ID
	}

	shares := commissiondom.Split(unit.Commission, chain, uc.missingPolicy)
	commissions := make([]*entity.Commission, 0, len(shares))
	for _, share := range shares {
		commissions = append(commissions, &entity.Commission{
			ID:            uuid.New().String(),
			SaleID:        s.ID,
			BeneficiaryID: share.BeneficiaryID,
			Role:          share.Role,
			Amount:        share.Amount,
			Status:        entity.CommissionStatusPending,
			CreatedAt:     now,
		})
	}

	err = uc.txRunner.RunSale(ctx, func(
		unitRepo repository.UnitRepository,
		saleRepo repository.SaleRepository,
		commissionRepo repository.CommissionRepository,
		_ repository.ProductRepository,
	) error {
		// El dueño actual queda como "último custodio" para auditoría.
		if err := unitRepo.TransitionCAS(in.IMEI, unit.Status, entity.UnitStatusSold, unit.CurrentOwnerID); err != nil {
			return err
		}
		if err := saleRepo.Create(s); err != nil {
			return err
		}
		if len(commissions) == 0 {
			return nil
		}
		return commissionRepo.CreateBatch(commissions)
	})
	if err != nil {
		return nil, err
	}

	if uc.reserver != nil {
		_ = uc.reserver.Release(ctx, in.IMEI, sellerID) // best effort
	}
	return s, nil
}

// completeAccessorySale vende un accesorio no serializado: descuenta stock
// con guard en la misma sentencia y registra la venta. Sin comisiones.
func (uc *UseCase) completeAccessorySale(ctx context.Context, sellerID string, in dto.CreateSaleRequest) (*entity.Sale, error) {
	if in.ProductID == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !validPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	seller, err := uc.actorRepo.GetByID(sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrActorNotFound
	}
	if !seller.IsActive() {
		return nil, domain.ErrForbidden
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.Category != entity.ProductCategoryAccessory {
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	s := &entity.Sale{
		ID:               uuid.New().String(),
		ProductID:        in.ProductID,
		Quantity:         in.Quantity,
		SellerID:         seller.ID,
		Amount:           in.Amount,
		PaymentMethod:    in.PaymentMethod,
		PaymentReference: in.PaymentReference,
		ReceiptNumber:    in.ReceiptNumber,
		CreatedAt:        now,
		CreatedBy:        sellerID,
	}
	err = uc.txRunner.RunSale(ctx, func(
		_ repository.UnitRepository,
		saleRepo repository.SaleRepository,
		_ repository.CommissionRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.DecrementStockCAS(in.ProductID, in.Quantity); err != nil {
			return err
		}
		return saleRepo.Create(s)
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Reserve toma la reserva advisory del equipo para el vendedor. Si no hay
// backend de reservas configurado la operación es un no-op con vencimiento
// inmediato: el guard del ledger sigue protegiendo la venta.
func (uc *UseCase) Reserve(ctx context.Context, imei, sellerID string) (time.Time, error) {
	if imei == "" {
		return time.Time{}, domain.ErrInvalidInput
	}
	if uc.reserver == nil {
		return time.Now(), nil
	}
	return uc.reserver.Reserve(ctx, imei, sellerID)
}

func validPaymentMethod(m string) bool {
	switch m {
	case entity.PaymentMethodCash, entity.PaymentMethodMpesa, entity.PaymentMethodBankTransfer:
		return true
	}
	return false
}

// ToResponse mapea la entidad al DTO expuesto.
func ToResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	return &dto.SaleResponse{
		ID:                s.ID,
		IMEI:              s.IMEI,
		ProductID:         s.ProductID,
		Quantity:          s.Quantity,
		SellerID:          s.SellerID,
		FieldOfficerID:    s.FieldOfficerID,
		TeamLeaderID:      s.TeamLeaderID,
		RegionalManagerID: s.RegionalManagerID,
		Amount:            s.Amount,
		PaymentMethod:     s.PaymentMethod,
		PaymentReference:  s.PaymentReference,
		ReceiptNumber:     s.ReceiptNumber,
		CreatedAt:         s.CreatedAt,
	}
}
