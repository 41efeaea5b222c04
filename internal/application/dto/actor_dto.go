package dto

import "time"

// CreateActorRequest alta de un actor en la jerarquía (solo admin).
type CreateActorRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`      // regional_manager, team_leader, field_officer
	Region   string `json:"region"`    // obligatoria debajo de admin
	ParentID string `json:"parent_id"` // TL → RM, FO → TL
}

// ReassignRequest reasignación lateral de un field officer a otro team leader.
type ReassignRequest struct {
	NewTeamLeaderID string `json:"new_team_leader_id"`
}

// ActorResponse actor expuesto por la API (sin hash de contraseña).
type ActorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Region    string    `json:"region,omitempty"`
	ParentID  string    `json:"parent_id,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse token emitido + actor autenticado.
type LoginResponse struct {
	Token string        `json:"token"`
	Actor ActorResponse `json:"actor"`
}
