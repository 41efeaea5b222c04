package commission

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/hierarchy"
)

// Políticas para el nivel ausente de la cadena de custodia (ej. un FO que
// reporta sin team leader, o un TL que vende directo sin FO).
//
//	omit     — la parte de ese nivel simplemente no se genera
//	escalate — la parte se suma al siguiente nivel presente hacia arriba
//	withhold — se genera la fila sin beneficiario, retenida para ajuste manual
const (
	PolicyOmit     = "omit"
	PolicyEscalate = "escalate"
	PolicyWithhold = "withhold"
)

// IsValidPolicy valida la política configurada.
func IsValidPolicy(p string) bool {
	return p == PolicyOmit || p == PolicyEscalate || p == PolicyWithhold
}

// Chain es la foto de la cadena de custodia al momento de la venta. Un nivel
// nil significa que ese rol no participó (vendedor de nivel superior o
// jerarquía incompleta).
type Chain struct {
	FieldOfficer    *entity.Actor
	TeamLeader      *entity.Actor
	RegionalManager *entity.Actor
}

// ResolveChain arma la cadena caminando desde el vendedor efectivo hacia
// arriba por Parent() hasta (y excluyendo) el admin.
func ResolveChain(t *hierarchy.Tree, seller *entity.Actor) Chain {
	var ch Chain
	for a := seller; a != nil && a.Role != entity.RoleAdmin; a = t.Parent(a) {
		switch a.Role {
		case entity.RoleFieldOfficer:
			ch.FieldOfficer = a
		case entity.RoleTeamLeader:
			ch.TeamLeader = a
		case entity.RoleRegionalManager:
			ch.RegionalManager = a
		}
	}
	return ch
}

// Share es una parte de comisión derivada para un nivel de la cadena.
// BeneficiaryID vacío = retenida (política withhold).
type Share struct {
	BeneficiaryID string
	Role          string
	Amount        decimal.Decimal
}

// Split deriva las partes de comisión de una venta según la configuración del
// equipo, la cadena presente y la política para niveles ausentes. Una venta
// directa del admin (cadena vacía) no genera comisiones.
func Split(cfg entity.CommissionConfig, ch Chain, policy string) []Share {
	// de abajo hacia arriba: FO, TL, RM
	levels := []level{
		{ch.FieldOfficer, entity.RoleFieldOfficer, cfg.FieldOfficer},
		{ch.TeamLeader, entity.RoleTeamLeader, cfg.TeamLeader},
		{ch.RegionalManager, entity.RoleRegionalManager, cfg.RegionalManager},
	}

	// Si el vendedor fue un TL o RM, los niveles por debajo no participaron:
	// su parte sigue la política de nivel ausente igual que un hueco en medio.
	var shares []Share
	carry := decimal.Zero
	for i, lv := range levels {
		amount := lv.amount
		if policy == PolicyEscalate {
			amount = amount.Add(carry)
			carry = decimal.Zero
		}
		if lv.actor != nil {
			shares = append(shares, Share{BeneficiaryID: lv.actor.ID, Role: lv.role, Amount: amount})
			continue
		}
		// nivel ausente
		switch policy {
		case PolicyEscalate:
			if hasPresentAbove(levels[i+1:]) {
				carry = amount
			}
			// sin nivel presente arriba la parte se descarta
		case PolicyWithhold:
			if amount.IsPositive() {
				shares = append(shares, Share{Role: lv.role, Amount: amount})
			}
		}
		// omit: nada
	}
	return shares
}

type level struct {
	actor  *entity.Actor
	role   string
	amount decimal.Decimal
}

func hasPresentAbove(levels []level) bool {
	for _, lv := range levels {
		if lv.actor != nil {
			return true
		}
	}
	return false
}
