package actor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distribucion-api/internal/application/actor"
	"github.com/jhoicas/Distribucion-api/internal/application/apptest"
	"github.com/jhoicas/Distribucion-api/internal/application/dto"
	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

func buildStore() *apptest.Store {
	s := apptest.NewStore()
	s.SeedActor(&entity.Actor{ID: "rm-1", Role: entity.RoleRegionalManager, Region: "West", Status: entity.ActorStatusActive})
	s.SeedActor(&entity.Actor{ID: "tl-1", Role: entity.RoleTeamLeader, Region: "West", ParentID: "rm-1", Status: entity.ActorStatusActive})
	s.SeedActor(&entity.Actor{ID: "tl-2", Role: entity.RoleTeamLeader, Region: "West", ParentID: "rm-1", Status: entity.ActorStatusActive})
	s.SeedActor(&entity.Actor{ID: "tl-east", Role: entity.RoleTeamLeader, Region: "East", Status: entity.ActorStatusActive})
	s.SeedActor(&entity.Actor{ID: "fo-1", Role: entity.RoleFieldOfficer, Region: "West", ParentID: "tl-1", Status: entity.ActorStatusActive})
	return s
}

func TestCreate_FOBajoSuTL(t *testing.T) {
	uc := actor.NewUseCase(buildStore())

	resp, err := uc.Create(dto.CreateActorRequest{
		Name:     "Juan Mwangi",
		Email:    "juan@example.com",
		Password: "secreto123",
		Role:     entity.RoleFieldOfficer,
		Region:   "West",
		ParentID: "tl-1",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleFieldOfficer, resp.Role)
	assert.Equal(t, entity.ActorStatusActive, resp.Status)
	assert.Equal(t, "tl-1", resp.ParentID)
}

func TestCreate_FOSinPadreRechazado(t *testing.T) {
	uc := actor.NewUseCase(buildStore())

	_, err := uc.Create(dto.CreateActorRequest{
		Name:     "Sin Padre",
		Email:    "huerfano@example.com",
		Password: "secreto123",
		Role:     entity.RoleFieldOfficer,
		Region:   "West",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidHierarchy)
}

func TestCreate_RegionDelPadreDebeCoincidir(t *testing.T) {
	uc := actor.NewUseCase(buildStore())

	_, err := uc.Create(dto.CreateActorRequest{
		Name:     "Cruzado",
		Email:    "cruzado@example.com",
		Password: "secreto123",
		Role:     entity.RoleFieldOfficer,
		Region:   "West",
		ParentID: "tl-east",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidHierarchy)
}

func TestCreate_EmailDuplicadoRechazado(t *testing.T) {
	uc := actor.NewUseCase(buildStore())

	in := dto.CreateActorRequest{
		Name:     "Primera",
		Email:    "dup@example.com",
		Password: "secreto123",
		Role:     entity.RoleTeamLeader,
		Region:   "West",
		ParentID: "rm-1",
	}
	_, err := uc.Create(in)
	require.NoError(t, err)

	in.Name = "Segunda"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestDeactivate_EsSoftDelete(t *testing.T) {
	s := buildStore()
	uc := actor.NewUseCase(s)

	require.NoError(t, uc.Deactivate("fo-1"))

	// El actor sigue existiendo para el historial, solo inactivo.
	resp, err := uc.GetByID("fo-1")
	require.NoError(t, err)
	assert.Equal(t, entity.ActorStatusInactive, resp.Status)
}

func TestReassign_FODeTLaTLMismaRegion(t *testing.T) {
	uc := actor.NewUseCase(buildStore())

	resp, err := uc.Reassign("fo-1", "tl-2")
	require.NoError(t, err)
	assert.Equal(t, "tl-2", resp.ParentID)
}

func TestReassign_CruceDeRegionRechazado(t *testing.T) {
	uc := actor.NewUseCase(buildStore())

	_, err := uc.Reassign("fo-1", "tl-east")
	assert.ErrorIs(t, err, domain.ErrInvalidHierarchy)
}

func TestList_PorRolYRegion(t *testing.T) {
	uc := actor.NewUseCase(buildStore())

	rows, err := uc.List(repository.ActorFilter{Role: entity.RoleTeamLeader, Region: "West"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
