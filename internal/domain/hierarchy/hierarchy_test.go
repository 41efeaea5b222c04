package hierarchy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/hierarchy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: árbol mínimo Oeste (RM → TL → FO) + un TL de otra región.
// ──────────────────────────────────────────────────────────────────────────────

func buildActors() []*entity.Actor {
	return []*entity.Actor{
		{ID: "admin", Role: entity.RoleAdmin, Status: entity.ActorStatusActive},
		{ID: "rm-west", Role: entity.RoleRegionalManager, Region: "West", Status: entity.ActorStatusActive},
		{ID: "tl-west-1", Role: entity.RoleTeamLeader, Region: "West", ParentID: "rm-west", Status: entity.ActorStatusActive},
		{ID: "tl-west-2", Role: entity.RoleTeamLeader, Region: "West", ParentID: "rm-west", Status: entity.ActorStatusActive},
		{ID: "tl-east", Role: entity.RoleTeamLeader, Region: "East", Status: entity.ActorStatusActive},
		{ID: "fo-1", Role: entity.RoleFieldOfficer, Region: "West", ParentID: "tl-west-1", Status: entity.ActorStatusActive},
		{ID: "fo-2", Role: entity.RoleFieldOfficer, Region: "West", ParentID: "tl-west-1", Status: entity.ActorStatusActive},
	}
}

func TestParent_FOHaciaTL(t *testing.T) {
	tree := hierarchy.NewTree(buildActors())
	fo := tree.Get("fo-1")
	require.NotNil(t, fo)

	parent := tree.Parent(fo)
	require.NotNil(t, parent)
	assert.Equal(t, "tl-west-1", parent.ID)
}

func TestParent_TLSinParentID_ResuelveRMPorRegion(t *testing.T) {
	// tl-east no tiene ParentID ni RM en su región: Parent debe ser nil.
	tree := hierarchy.NewTree(buildActors())
	assert.Nil(t, tree.Parent(tree.Get("tl-east")))

	// Un TL sin ParentID pero con RM activo de su región lo resuelve implícitamente.
	actors := append(buildActors(), &entity.Actor{
		ID: "tl-west-3", Role: entity.RoleTeamLeader, Region: "West", Status: entity.ActorStatusActive,
	})
	tree = hierarchy.NewTree(actors)
	parent := tree.Parent(tree.Get("tl-west-3"))
	require.NotNil(t, parent)
	assert.Equal(t, "rm-west", parent.ID)
}

func TestChildren_RMSonTLsDeSuRegion(t *testing.T) {
	tree := hierarchy.NewTree(buildActors())
	children := tree.Children(tree.Get("rm-west"))

	ids := make([]string, 0, len(children))
	for _, c := range children {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{"tl-west-1", "tl-west-2"}, ids,
		"los hijos de un RM son los TLs de su región")
}

func TestChildren_TLSonFOsConParentID(t *testing.T) {
	tree := hierarchy.NewTree(buildActors())
	children := tree.Children(tree.Get("tl-west-1"))
	assert.Len(t, children, 2)

	assert.Empty(t, tree.Children(tree.Get("tl-west-2")),
		"un TL sin FOs asignados no tiene hijos")
}

func TestIsAncestor_CadenaCompleta(t *testing.T) {
	tree := hierarchy.NewTree(buildActors())

	assert.True(t, tree.IsAncestor(tree.Get("tl-west-1"), tree.Get("fo-1")))
	assert.True(t, tree.IsAncestor(tree.Get("rm-west"), tree.Get("fo-1")),
		"el RM es ancestro transitivo del FO")
	assert.True(t, tree.IsAncestor(tree.Get("admin"), tree.Get("fo-1")))
	assert.False(t, tree.IsAncestor(tree.Get("fo-1"), tree.Get("tl-west-1")),
		"la relación no es simétrica")
	assert.False(t, tree.IsAncestor(tree.Get("tl-west-2"), tree.Get("fo-1")))
}

// ── Reasignación lateral de FO ───────────────────────────────────────────────

func TestValidateReassignment_MismaRegionOK(t *testing.T) {
	tree := hierarchy.NewTree(buildActors())
	err := hierarchy.ValidateReassignment(tree.Get("fo-1"), tree.Get("tl-west-2"))
	assert.NoError(t, err)
}

func TestValidateReassignment_CruceDeRegionRechazado(t *testing.T) {
	tree := hierarchy.NewTree(buildActors())
	err := hierarchy.ValidateReassignment(tree.Get("fo-1"), tree.Get("tl-east"))
	assert.ErrorIs(t, err, domain.ErrInvalidHierarchy,
		"reasignar un FO a un TL de otra región debe fallar")
}

func TestValidateReassignment_DestinoNoEsTL(t *testing.T) {
	tree := hierarchy.NewTree(buildActors())
	err := hierarchy.ValidateReassignment(tree.Get("fo-1"), tree.Get("rm-west"))
	assert.ErrorIs(t, err, domain.ErrInvalidHierarchy)
}

func TestValidateReassignment_TLInactivoRechazado(t *testing.T) {
	actors := buildActors()
	actors[3].Status = entity.ActorStatusInactive // tl-west-2
	tree := hierarchy.NewTree(actors)
	err := hierarchy.ValidateReassignment(tree.Get("fo-1"), tree.Get("tl-west-2"))
	assert.ErrorIs(t, err, domain.ErrInvalidHierarchy)
}

// ── Validación de padre al crear actores ─────────────────────────────────────

func TestValidateParent_TLNecesitaRMDeSuRegion(t *testing.T) {
	tree := hierarchy.NewTree(buildActors())

	assert.NoError(t, hierarchy.ValidateParent(entity.RoleTeamLeader, "West", tree.Get("rm-west")))
	assert.ErrorIs(t,
		hierarchy.ValidateParent(entity.RoleTeamLeader, "East", tree.Get("rm-west")),
		domain.ErrInvalidHierarchy)
	assert.ErrorIs(t,
		hierarchy.ValidateParent(entity.RoleFieldOfficer, "West", tree.Get("rm-west")),
		domain.ErrInvalidHierarchy,
		"un FO no puede colgar de un RM")
}

func TestValidateParent_RMYAdminSinPadre(t *testing.T) {
	assert.NoError(t, hierarchy.ValidateParent(entity.RoleRegionalManager, "West", nil))
	assert.NoError(t, hierarchy.ValidateParent(entity.RoleAdmin, "", nil))
	assert.ErrorIs(t, hierarchy.ValidateParent("cajero", "West", nil), domain.ErrInvalidInput)
}
