package hierarchy

import (
	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
)

// Tree opera sobre una foto en memoria de los actores (servicio de dominio
// puro, sin I/O). La foto se toma al inicio de cada operación: la atribución
// histórica de ventas/comisiones nunca depende del árbol actual sino del
// snapshot guardado en la venta.
type Tree struct {
	byID map[string]*entity.Actor
	all  []*entity.Actor
}

// NewTree construye el árbol a partir de la lista de actores.
func NewTree(actors []*entity.Actor) *Tree {
	byID := make(map[string]*entity.Actor, len(actors))
	for _, a := range actors {
		if a != nil {
			byID[a.ID] = a
		}
	}
	return &Tree{byID: byID, all: actors}
}

// Get devuelve el actor por ID, o nil si no existe en la foto.
func (t *Tree) Get(id string) *entity.Actor {
	return t.byID[id]
}

// Parent devuelve el superior directo del actor.
// FO → su team leader (ParentID); TL → su regional manager (ParentID o, si no
// está seteado, el RM activo de su misma región); RM y admin → nil.
func (t *Tree) Parent(a *entity.Actor) *entity.Actor {
	if a == nil {
		return nil
	}
	if a.ParentID != "" {
		return t.byID[a.ParentID]
	}
	if a.Role == entity.RoleTeamLeader {
		for _, c := range t.all {
			if c != nil && c.Role == entity.RoleRegionalManager && c.Region == a.Region && c.IsActive() {
				return c
			}
		}
	}
	return nil
}

// Children devuelve los subordinados directos del actor.
// Para un RM son los team leaders de su región; para un TL los field officers
// cuyo ParentID apunta a él (la región coincide implícitamente).
func (t *Tree) Children(a *entity.Actor) []*entity.Actor {
	if a == nil {
		return nil
	}
	var out []*entity.Actor
	switch a.Role {
	case entity.RoleRegionalManager:
		for _, c := range t.all {
			if c != nil && c.Role == entity.RoleTeamLeader && c.Region == a.Region {
				out = append(out, c)
			}
		}
	case entity.RoleTeamLeader:
		for _, c := range t.all {
			if c != nil && c.Role == entity.RoleFieldOfficer && c.ParentID == a.ID {
				out = append(out, c)
			}
		}
	case entity.RoleAdmin:
		for _, c := range t.all {
			if c != nil && c.Role == entity.RoleRegionalManager {
				out = append(out, c)
			}
		}
	}
	return out
}

// IsAncestor indica si a está por encima de b en la cadena de superiores.
func (t *Tree) IsAncestor(a, b *entity.Actor) bool {
	if a == nil || b == nil || a.ID == b.ID {
		return false
	}
	if a.Role == entity.RoleAdmin {
		return b.Role != entity.RoleAdmin
	}
	for p := t.Parent(b); p != nil; p = t.Parent(p) {
		if p.ID == a.ID {
			return true
		}
	}
	return false
}

// ValidateReassignment verifica la reasignación lateral de un field officer a
// otro team leader: mismo nivel, misma región. No toca el historial.
func ValidateReassignment(fo, newTL *entity.Actor) error {
	if fo == nil || newTL == nil {
		return domain.ErrActorNotFound
	}
	if fo.Role != entity.RoleFieldOfficer {
		return domain.ErrInvalidHierarchy
	}
	if newTL.Role != entity.RoleTeamLeader {
		return domain.ErrInvalidHierarchy
	}
	if newTL.Region != fo.Region {
		return domain.ErrInvalidHierarchy
	}
	if !newTL.IsActive() {
		return domain.ErrInvalidHierarchy
	}
	return nil
}

// ValidateParent verifica que el padre propuesto para un nuevo actor sea el
// rol inmediatamente superior y de la misma región.
func ValidateParent(role, region string, parent *entity.Actor) error {
	switch role {
	case entity.RoleAdmin, entity.RoleRegionalManager:
		// admin no tiene padre; RM reporta implícitamente al admin
		return nil
	case entity.RoleTeamLeader:
		if parent == nil || parent.Role != entity.RoleRegionalManager || parent.Region != region {
			return domain.ErrInvalidHierarchy
		}
	case entity.RoleFieldOfficer:
		if parent == nil || parent.Role != entity.RoleTeamLeader || parent.Region != region {
			return domain.ErrInvalidHierarchy
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}
