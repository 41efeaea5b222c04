package allocation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Distribucion-api/internal/application/dto"
	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/ledger"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// UseCase es el motor de asignación: mueve la custodia de un equipo un nivel
// hacia abajo en la jerarquía, produciendo un registro inmutable por
// transferencia, y revierte asignaciones vigentes.
type UseCase struct {
	txRunner  TxRunner
	actorRepo repository.ActorRepository
	unitRepo  repository.UnitRepository
	allocRepo repository.AllocationRepository
}

// NewUseCase construye el motor de asignación.
func NewUseCase(
	txRunner TxRunner,
	actorRepo repository.ActorRepository,
	unitRepo repository.UnitRepository,
	allocRepo repository.AllocationRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, actorRepo: actorRepo, unitRepo: unitRepo, allocRepo: allocRepo}
}

// Allocate transfiere la custodia de un equipo de fromID a toID.
// Precondiciones:
//   - fromID tiene la custodia actual (el admin posee implícitamente todo
//     IN_STOCK vía el centinela de bodega) → ErrNotOwner
//   - toID es exactamente un nivel abajo del rol de fromID, misma región
//     (el admin no tiene restricción de región) → ErrHierarchyViolation
//   - el equipo no está vendido → ErrAlreadySold
//
// La transición del ledger y el registro de asignación se escriben en una
// sola transacción; el guard CAS por estado esperado decide carreras.
func (uc *UseCase) Allocate(ctx context.Context, fromID, toID, imei, createdBy string) (*entity.Allocation, error) {
	return uc.allocate(ctx, fromID, toID, imei, createdBy, "")
}

// AllocateBatch asigna varios equipos al mismo destino compartiendo un
// batch_id. Cada ítem es atómico e independiente: un fallo no revierte los
// demás (la aceptabilidad de lotes parciales es deliberada).
func (uc *UseCase) AllocateBatch(ctx context.Context, fromID, toID string, imeis []string, createdBy string) *dto.AllocateBatchResponse {
	batchID := uuid.New().String()
	resp := &dto.AllocateBatchResponse{BatchID: batchID}
	for _, imei := range imeis {
		alloc, err := uc.allocate(ctx, fromID, toID, imei, createdBy, batchID)
		item := dto.AllocateItemResult{IMEI: imei, OK: err == nil}
		if err != nil {
			item.Error = err.Error()
		} else {
			item.AllocationID = alloc.ID
		}
		resp.Items = append(resp.Items, item)
	}
	return resp
}

func (uc *UseCase) allocate(ctx context.Context, fromID, toID, imei, createdBy, batchID string) (*entity.Allocation, error) {
	if fromID == "" || toID == "" || imei == "" {
		return nil, domain.ErrInvalidInput
	}
	from, err := uc.actorRepo.GetByID(fromID)
	if err != nil {
		return nil, err
	}
	to, err := uc.actorRepo.GetByID(toID)
	if err != nil {
		return nil, err
	}
	if from == nil || to == nil {
		return nil, domain.ErrActorNotFound
	}
	if !from.IsActive() || !to.IsActive() {
		return nil, domain.ErrForbidden
	}

	// Jerarquía: la tabla de capacidades dicta el rol destino; la región debe
	// coincidir salvo que asigne el admin.
	if entity.SubordinateRole(from.Role) != to.Role {
		return nil, domain.ErrHierarchyViolation
	}
	if from.Role != entity.RoleAdmin && from.Region != to.Region {
		return nil, domain.ErrHierarchyViolation
	}

	unit, err := uc.unitRepo.GetByIMEI(imei)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if unit.IsSold() {
		return nil, domain.ErrAlreadySold
	}

	// Custodia actual: el admin posee los IN_STOCK (centinela de bodega);
	// cualquier otro debe ser el dueño registrado.
	if from.Role == entity.RoleAdmin {
		if unit.CurrentOwnerID != entity.WarehouseActorID && unit.CurrentOwnerID != from.ID {
			return nil, domain.ErrNotOwner
		}
	} else if unit.CurrentOwnerID != from.ID {
		return nil, domain.ErrNotOwner
	}

	if err := ledger.Validate(unit.Status, entity.UnitStatusAllocated, to.ID); err != nil {
		return nil, err
	}

	now := time.Now()
	alloc := &entity.Allocation{
		ID:           uuid.New().String(),
		BatchID:      batchID,
		IMEI:         imei,
		FromID:       from.ID,
		FromRole:     from.Role,
		ToID:         to.ID,
		ToRole:       to.Role,
		PriorOwnerID: unit.CurrentOwnerID,
		PriorStatus:  unit.Status,
		Status:       entity.AllocationStatusCompleted,
		CreatedAt:    now,
		CreatedBy:    createdBy,
	}
	if alloc.BatchID == "" {
		alloc.BatchID = alloc.ID
	}

	err = uc.txRunner.Run(ctx, func(unitRepo repository.UnitRepository, allocRepo repository.AllocationRepository) error {
		// CAS sobre el estado leído: si otro actor ganó la carrera, el estado
		// esperado ya no coincide y el repo devuelve el error tipado.
		if err := unitRepo.TransitionCAS(imei, unit.Status, entity.UnitStatusAllocated, to.ID); err != nil {
			return err
		}
		return allocRepo.Create(alloc)
	})
	if err != nil {
		return nil, err
	}
	return alloc, nil
}

// Reverse deshace una asignación completada y vigente: restaura el par
// (dueño, estado) capturado al crearla y marca el registro como reversed.
// Si el equipo ya se vendió la reversión se rechaza de plano (SOLD es
// terminal, también para reversiones).
func (uc *UseCase) Reverse(ctx context.Context, allocationID string) (*entity.Allocation, error) {
	alloc, err := uc.allocRepo.GetByID(allocationID)
	if err != nil {
		return nil, err
	}
	if alloc == nil {
		return nil, domain.ErrNotFound
	}
	if alloc.Status != entity.AllocationStatusCompleted {
		return nil, domain.ErrInvalidTransition
	}

	unit, err := uc.unitRepo.GetByIMEI(alloc.IMEI)
	if err != nil {
		return nil, err
	}
	if unit == nil {
		return nil, domain.ErrNotFound
	}
	if unit.IsSold() {
		return nil, domain.ErrAlreadySold
	}

	// Solo la asignación más reciente del equipo es reversible: revertir una
	// intermedia rompería la cadena de custodia.
	latest, err := uc.allocRepo.LatestByIMEI(alloc.IMEI)
	if err != nil {
		return nil, err
	}
	if latest == nil || latest.ID != alloc.ID {
		return nil, domain.ErrAllocationNotCurrent
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(unitRepo repository.UnitRepository, allocRepo repository.AllocationRepository) error {
		if err := unitRepo.RestoreCAS(alloc.IMEI, entity.UnitStatusAllocated, alloc.ToID, alloc.PriorStatus, alloc.PriorOwnerID); err != nil {
			return err
		}
		return allocRepo.MarkReversed(alloc.ID, now)
	})
	if err != nil {
		return nil, err
	}
	alloc.Status = entity.AllocationStatusReversed
	alloc.ReversedAt = &now
	return alloc, nil
}

// List lista asignaciones con filtros opcionales.
func (uc *UseCase) List(filter repository.AllocationFilter) ([]*entity.Allocation, error) {
	return uc.allocRepo.List(filter)
}

// ToResponse mapea la entidad al DTO expuesto.
func ToResponse(a *entity.Allocation) *dto.AllocationResponse {
	if a == nil {
		return nil
	}
	return &dto.AllocationResponse{
		ID:         a.ID,
		BatchID:    a.BatchID,
		IMEI:       a.IMEI,
		FromID:     a.FromID,
		FromRole:   a.FromRole,
		ToID:       a.ToID,
		ToRole:     a.ToRole,
		Status:     a.Status,
		CreatedAt:  a.CreatedAt,
		ReversedAt: a.ReversedAt,
	}
}
