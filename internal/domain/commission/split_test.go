package commission_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Distribucion-api/internal/domain/commission"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/hierarchy"
)

// ──────────────────────────────────────────────────────────────────────────────
// Config de referencia: fo=500, tl=300, rm=200 (escenario del flujo directo).
// ──────────────────────────────────────────────────────────────────────────────

func cfg() entity.CommissionConfig {
	return entity.CommissionConfig{
		FieldOfficer:    decimal.NewFromInt(500),
		TeamLeader:      decimal.NewFromInt(300),
		RegionalManager: decimal.NewFromInt(200),
	}
}

func fullTree() *hierarchy.Tree {
	return hierarchy.NewTree([]*entity.Actor{
		{ID: "rm-1", Role: entity.RoleRegionalManager, Region: "West", Status: entity.ActorStatusActive},
		{ID: "tl-1", Role: entity.RoleTeamLeader, Region: "West", ParentID: "rm-1", Status: entity.ActorStatusActive},
		{ID: "fo-1", Role: entity.RoleFieldOfficer, Region: "West", ParentID: "tl-1", Status: entity.ActorStatusActive},
	})
}

func amountByRole(shares []commission.Share, role string) (commission.Share, bool) {
	for _, s := range shares {
		if s.Role == role {
			return s, true
		}
	}
	return commission.Share{}, false
}

func TestSplit_CadenaCompleta_TresPartes(t *testing.T) {
	tree := fullTree()
	chain := commission.ResolveChain(tree, tree.Get("fo-1"))
	shares := commission.Split(cfg(), chain, commission.PolicyOmit)

	require.Len(t, shares, 3, "FO con TL y RM vivos genera exactamente tres filas")

	fo, _ := amountByRole(shares, entity.RoleFieldOfficer)
	tl, _ := amountByRole(shares, entity.RoleTeamLeader)
	rm, _ := amountByRole(shares, entity.RoleRegionalManager)
	assert.Equal(t, "fo-1", fo.BeneficiaryID)
	assert.Equal(t, "tl-1", tl.BeneficiaryID)
	assert.Equal(t, "rm-1", rm.BeneficiaryID)
	assert.True(t, fo.Amount.Equal(decimal.NewFromInt(500)))
	assert.True(t, tl.Amount.Equal(decimal.NewFromInt(300)))
	assert.True(t, rm.Amount.Equal(decimal.NewFromInt(200)))

	// La suma iguala el total configurado.
	total := fo.Amount.Add(tl.Amount).Add(rm.Amount)
	assert.True(t, total.Equal(cfg().Total()))
}

func TestSplit_VentaDeTL_SinParteFO_PolicyOmit(t *testing.T) {
	tree := fullTree()
	chain := commission.ResolveChain(tree, tree.Get("tl-1"))
	shares := commission.Split(cfg(), chain, commission.PolicyOmit)

	require.Len(t, shares, 2)
	_, hasFO := amountByRole(shares, entity.RoleFieldOfficer)
	assert.False(t, hasFO, "bajo omit la parte del nivel ausente desaparece")
}

func TestSplit_FOSinTL_PolicyEscalate_SubeAlRM(t *testing.T) {
	// FO que reporta directo: sin TL en la cadena, con RM presente.
	tree := hierarchy.NewTree([]*entity.Actor{
		{ID: "rm-1", Role: entity.RoleRegionalManager, Region: "West", Status: entity.ActorStatusActive},
		{ID: "fo-solo", Role: entity.RoleFieldOfficer, Region: "West", ParentID: "rm-1", Status: entity.ActorStatusActive},
	})
	chain := commission.ResolveChain(tree, tree.Get("fo-solo"))
	shares := commission.Split(cfg(), chain, commission.PolicyEscalate)

	require.Len(t, shares, 2)
	rm, ok := amountByRole(shares, entity.RoleRegionalManager)
	require.True(t, ok)
	assert.True(t, rm.Amount.Equal(decimal.NewFromInt(500)),
		"la parte del TL ausente (300) escala al RM (200+300)")
}

func TestSplit_PolicyWithhold_FilaSinBeneficiario(t *testing.T) {
	tree := fullTree()
	chain := commission.ResolveChain(tree, tree.Get("tl-1"))
	shares := commission.Split(cfg(), chain, commission.PolicyWithhold)

	require.Len(t, shares, 3)
	fo, ok := amountByRole(shares, entity.RoleFieldOfficer)
	require.True(t, ok)
	assert.Empty(t, fo.BeneficiaryID, "withhold retiene la parte sin beneficiario")
	assert.True(t, fo.Amount.Equal(decimal.NewFromInt(500)))
}

func TestSplit_VentaDirectaAdmin_SinComisiones(t *testing.T) {
	tree := hierarchy.NewTree([]*entity.Actor{
		{ID: "admin", Role: entity.RoleAdmin, Status: entity.ActorStatusActive},
	})
	chain := commission.ResolveChain(tree, tree.Get("admin"))
	shares := commission.Split(cfg(), chain, commission.PolicyOmit)
	assert.Empty(t, shares, "una venta directa del admin no genera comisiones")
}

func TestSplit_EscalateEnCadenaHastaRM(t *testing.T) {
	// Solo el RM vende: las partes de FO y TL escalan en cadena hasta él.
	tree := hierarchy.NewTree([]*entity.Actor{
		{ID: "rm-1", Role: entity.RoleRegionalManager, Region: "West", Status: entity.ActorStatusActive},
	})
	chain := commission.ResolveChain(tree, tree.Get("rm-1"))
	shares := commission.Split(cfg(), chain, commission.PolicyEscalate)

	require.Len(t, shares, 1)
	assert.True(t, shares[0].Amount.Equal(decimal.NewFromInt(1000)),
		"FO(500) y TL(300) ausentes escalan al RM: 500+300+200")
}

func TestResolveChain_DetieneEnAdmin(t *testing.T) {
	tree := hierarchy.NewTree([]*entity.Actor{
		{ID: "admin", Role: entity.RoleAdmin, Status: entity.ActorStatusActive},
		{ID: "rm-1", Role: entity.RoleRegionalManager, Region: "West", ParentID: "admin", Status: entity.ActorStatusActive},
	})
	chain := commission.ResolveChain(tree, tree.Get("rm-1"))
	assert.Nil(t, chain.FieldOfficer)
	assert.Nil(t, chain.TeamLeader)
	require.NotNil(t, chain.RegionalManager)
	assert.Equal(t, "rm-1", chain.RegionalManager.ID)
}
