package dto

import "time"

// AllocateRequest asignación de custodia. IMEIs con un solo elemento =
// asignación simple; varios = lote (cada ítem reporta su resultado).
type AllocateRequest struct {
	FromID string   `json:"from_id"`
	ToID   string   `json:"to_id"`
	IMEIs  []string `json:"imeis"`
}

// AllocationResponse registro de asignación.
type AllocationResponse struct {
	ID         string     `json:"id"`
	BatchID    string     `json:"batch_id"`
	IMEI       string     `json:"imei"`
	FromID     string     `json:"from_id"`
	FromRole   string     `json:"from_role"`
	ToID       string     `json:"to_id"`
	ToRole     string     `json:"to_role"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ReversedAt *time.Time `json:"reversed_at,omitempty"`
}

// AllocateItemResult resultado por IMEI de una asignación en lote.
type AllocateItemResult struct {
	IMEI         string `json:"imei"`
	AllocationID string `json:"allocation_id,omitempty"`
	OK           bool   `json:"ok"`
	Error        string `json:"error,omitempty"`
}

// AllocateBatchResponse respuesta del lote completo.
type AllocateBatchResponse struct {
	BatchID string               `json:"batch_id"`
	Items   []AllocateItemResult `json:"items"`
}
