package entity

// Roles válidos para Actor. Conjunto cerrado: la jerarquía de custodia es
// admin → regional_manager → team_leader → field_officer.
const (
	RoleAdmin           = "admin"
	RoleRegionalManager = "regional_manager"
	RoleTeamLeader      = "team_leader"
	RoleFieldOfficer    = "field_officer"
)

// Capability describe lo que un rol puede hacer dentro del motor de asignación
// y venta. Tabla consultada por los casos de uso en lugar de switches ad hoc.
type Capability struct {
	AllocatesTo    string // rol exactamente un nivel abajo ("" = no asigna)
	SellsFromStock bool   // puede vender directo desde bodega (IN_STOCK)
	SellsAllocated bool   // puede vender equipos asignados a su custodia
	NeedsRegion    bool   // el actor debe tener región
	NeedsParent    bool   // el actor debe tener superior directo (parent_id)
}

// capabilities es la tabla cerrada rol → capacidades.
var capabilities = map[string]Capability{
	RoleAdmin:           {AllocatesTo: RoleRegionalManager, SellsFromStock: true},
	RoleRegionalManager: {AllocatesTo: RoleTeamLeader, SellsAllocated: true, NeedsRegion: true},
	RoleTeamLeader:      {AllocatesTo: RoleFieldOfficer, SellsAllocated: true, NeedsRegion: true},
	RoleFieldOfficer:    {SellsAllocated: true, NeedsRegion: true, NeedsParent: true},
}

// CapabilityFor devuelve las capacidades del rol. ok=false si el rol no existe.
func CapabilityFor(role string) (Capability, bool) {
	c, ok := capabilities[role]
	return c, ok
}

// IsValidRole indica si el rol pertenece al conjunto cerrado.
func IsValidRole(role string) bool {
	_, ok := capabilities[role]
	return ok
}

// SubordinateRole devuelve el rol exactamente un nivel abajo en la jerarquía
// de custodia, o "" si el rol no asigna hacia abajo.
func SubordinateRole(role string) string {
	c, ok := capabilities[role]
	if !ok {
		return ""
	}
	return c.AllocatesTo
}
