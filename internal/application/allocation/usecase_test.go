package allocation_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distribucion-api/internal/application/allocation"
	"github.com/jhoicas/Distribucion-api/internal/application/apptest"
	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: admin + RM West + TL West + FO, y un TL East para cruces de región.
// ──────────────────────────────────────────────────────────────────────────────

func buildStore() *apptest.Store {
	s := apptest.NewStore()
	s.SeedActor(&entity.Actor{ID: "admin", Role: entity.RoleAdmin, Status: entity.ActorStatusActive})
	s.SeedActor(&entity.Actor{ID: "rm-1", Role: entity.RoleRegionalManager, Region: "West", Status: entity.ActorStatusActive})
	s.SeedActor(&entity.Actor{ID: "tl-1", Role: entity.RoleTeamLeader, Region: "West", ParentID: "rm-1", Status: entity.ActorStatusActive})
	s.SeedActor(&entity.Actor{ID: "tl-east", Role: entity.RoleTeamLeader, Region: "East", Status: entity.ActorStatusActive})
	s.SeedActor(&entity.Actor{ID: "fo-1", Role: entity.RoleFieldOfficer, Region: "West", ParentID: "tl-1", Status: entity.ActorStatusActive})
	return s
}

func seedUnit(s *apptest.Store, imei, status, owner string) {
	s.SeedUnit(&entity.InventoryUnit{
		IMEI:           imei,
		ProductID:      "prod-1",
		Status:         status,
		CurrentOwnerID: owner,
		SellingPrice:   decimal.NewFromInt(20000),
		Source:         entity.SourceWatu,
	})
}

func newUseCase(s *apptest.Store) *allocation.UseCase {
	return allocation.NewUseCase(s, s, s.Units(), s.Allocations())
}

func TestAllocate_AdminARMDesdeBodega(t *testing.T) {
	s := buildStore()
	seedUnit(s, "IMEI-001", entity.UnitStatusInStock, entity.WarehouseActorID)
	uc := newUseCase(s)

	alloc, err := uc.Allocate(context.Background(), "admin", "rm-1", "IMEI-001", "admin")
	require.NoError(t, err)
	assert.Equal(t, entity.AllocationStatusCompleted, alloc.Status)
	assert.Equal(t, entity.WarehouseActorID, alloc.PriorOwnerID)
	assert.Equal(t, entity.UnitStatusInStock, alloc.PriorStatus)

	unit, err := s.Units().GetByIMEI("IMEI-001")
	require.NoError(t, err)
	assert.Equal(t, entity.UnitStatusAllocated, unit.Status)
	assert.Equal(t, "rm-1", unit.CurrentOwnerID)
}

func TestAllocate_CadenaCompletaHastaFO(t *testing.T) {
	s := buildStore()
	seedUnit(s, "IMEI-001", entity.UnitStatusInStock, entity.WarehouseActorID)
	uc := newUseCase(s)
	ctx := context.Background()

	_, err := uc.Allocate(ctx, "admin", "rm-1", "IMEI-001", "admin")
	require.NoError(t, err)
	_, err = uc.Allocate(ctx, "rm-1", "tl-1", "IMEI-001", "rm-1")
	require.NoError(t, err)
	_, err = uc.Allocate(ctx, "tl-1", "fo-1", "IMEI-001", "tl-1")
	require.NoError(t, err)

	unit, _ := s.Units().GetByIMEI("IMEI-001")
	assert.Equal(t, "fo-1", unit.CurrentOwnerID)
	assert.Equal(t, entity.UnitStatusAllocated, unit.Status)
}

func TestAllocate_SaltoDeNivelRechazado(t *testing.T) {
	s := buildStore()
	seedUnit(s, "IMEI-001", entity.UnitStatusInStock, entity.WarehouseActorID)
	uc := newUseCase(s)

	// admin → TL salta al RM: exactamente un nivel abajo o nada.
	_, err := uc.Allocate(context.Background(), "admin", "tl-1", "IMEI-001", "admin")
	assert.ErrorIs(t, err, domain.ErrHierarchyViolation)
}

func TestAllocate_CruceDeRegionRechazado(t *testing.T) {
	s := buildStore()
	seedUnit(s, "IMEI-001", entity.UnitStatusAllocated, "rm-1")
	uc := newUseCase(s)

	// RM West → TL East: la región debe coincidir; el equipo no cambia.
	_, err := uc.Allocate(context.Background(), "rm-1", "tl-east", "IMEI-001", "rm-1")
	assert.ErrorIs(t, err, domain.ErrHierarchyViolation)

	unit, _ := s.Units().GetByIMEI("IMEI-001")
	assert.Equal(t, entity.UnitStatusAllocated, unit.Status)
	assert.Equal(t, "rm-1", unit.CurrentOwnerID)
}

func TestAllocate_SinCustodiaRechazado(t *testing.T) {
	s := buildStore()
	seedUnit(s, "IMEI-001", entity.UnitStatusAllocated, "rm-1")
	uc := newUseCase(s)

	// tl-1 no tiene el equipo: lo tiene rm-1.
	_, err := uc.Allocate(context.Background(), "tl-1", "fo-1", "IMEI-001", "tl-1")
	assert.ErrorIs(t, err, domain.ErrNotOwner)
}

func TestAllocate_EquipoVendidoRechazado(t *testing.T) {
	s := buildStore()
	seedUnit(s, "IMEI-001", entity.UnitStatusSold, "fo-1")
	uc := newUseCase(s)

	_, err := uc.Allocate(context.Background(), "admin", "rm-1", "IMEI-001", "admin")
	assert.ErrorIs(t, err, domain.ErrAlreadySold)
}

func TestAllocateBatch_ResultadosIndependientes(t *testing.T) {
	s := buildStore()
	seedUnit(s, "IMEI-001", entity.UnitStatusInStock, entity.WarehouseActorID)
	seedUnit(s, "IMEI-002", entity.UnitStatusSold, "fo-1") // este ítem debe fallar
	seedUnit(s, "IMEI-003", entity.UnitStatusInStock, entity.WarehouseActorID)
	uc := newUseCase(s)

	resp := uc.AllocateBatch(context.Background(), "admin", "rm-1", []string{"IMEI-001", "IMEI-002", "IMEI-003"}, "admin")
	require.Len(t, resp.Items, 3)
	assert.True(t, resp.Items[0].OK)
	assert.False(t, resp.Items[1].OK, "el equipo vendido falla sin abortar el lote")
	assert.True(t, resp.Items[2].OK)

	// Todos los ítems del lote comparten batch_id.
	allocs, _ := s.Allocations().ListAll()
	require.Len(t, allocs, 2)
	assert.Equal(t, resp.BatchID, allocs[0].BatchID)
	assert.Equal(t, resp.BatchID, allocs[1].BatchID)
}

// ── Reversión ────────────────────────────────────────────────────────────────

func TestReverse_RestauraEstadoAnterior(t *testing.T) {
	s := buildStore()
	seedUnit(s, "IMEI-001", entity.UnitStatusInStock, entity.WarehouseActorID)
	uc := newUseCase(s)
	ctx := context.Background()

	alloc, err := uc.Allocate(ctx, "admin", "rm-1", "IMEI-001", "admin")
	require.NoError(t, err)

	reversed, err := uc.Reverse(ctx, alloc.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AllocationStatusReversed, reversed.Status)
	require.NotNil(t, reversed.ReversedAt)

	// El equipo vuelve exactamente al par (dueño, estado) previo.
	unit, _ := s.Units().GetByIMEI("IMEI-001")
	assert.Equal(t, entity.UnitStatusInStock, unit.Status)
	assert.Equal(t, entity.WarehouseActorID, unit.CurrentOwnerID)
}

func TestReverse_SoloLaAsignacionVigente(t *testing.T) {
	s := buildStore()
	seedUnit(s, "IMEI-001", entity.UnitStatusInStock, entity.WarehouseActorID)
	uc := newUseCase(s)
	ctx := context.Background()

	first, err := uc.Allocate(ctx, "admin", "rm-1", "IMEI-001", "admin")
	require.NoError(t, err)
	_, err = uc.Allocate(ctx, "rm-1", "tl-1", "IMEI-001", "rm-1")
	require.NoError(t, err)

	_, err = uc.Reverse(ctx, first.ID)
	assert.ErrorIs(t, err, domain.ErrAllocationNotCurrent,
		"revertir una asignación intermedia rompería la cadena de custodia")
}

func TestReverse_EquipoVendidoRechazado(t *testing.T) {
	s := buildStore()
	seedUnit(s, "IMEI-001", entity.UnitStatusInStock, entity.WarehouseActorID)
	uc := newUseCase(s)
	ctx := context.Background()

	alloc, err := uc.Allocate(ctx, "admin", "rm-1", "IMEI-001", "admin")
	require.NoError(t, err)

	// El equipo se vende por fuera: SOLD es terminal también para reversiones.
	require.NoError(t, s.Units().TransitionCAS("IMEI-001", entity.UnitStatusAllocated, entity.UnitStatusSold, "rm-1"))

	_, err = uc.Reverse(ctx, alloc.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadySold)

	unit, _ := s.Units().GetByIMEI("IMEI-001")
	assert.Equal(t, entity.UnitStatusSold, unit.Status, "la reversión rechazada no toca el ledger")
}

func TestReverse_YaRevertidaRechazada(t *testing.T) {
	s := buildStore()
	seedUnit(s, "IMEI-001", entity.UnitStatusInStock, entity.WarehouseActorID)
	uc := newUseCase(s)
	ctx := context.Background()

	alloc, err := uc.Allocate(ctx, "admin", "rm-1", "IMEI-001", "admin")
	require.NoError(t, err)
	_, err = uc.Reverse(ctx, alloc.ID)
	require.NoError(t, err)

	_, err = uc.Reverse(ctx, alloc.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
