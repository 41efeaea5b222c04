package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

var _ repository.AllocationRepository = (*AllocationRepo)(nil)

const allocationColumns = `id, batch_id, imei, from_id, from_role, to_id, to_role,
	prior_owner_id, prior_status, status, created_at, created_by, reversed_at`

// AllocationRepo implementación del registro de asignaciones sobre PostgreSQL.
type AllocationRepo struct {
	q Querier
}

// NewAllocationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAllocationRepository(q Querier) *AllocationRepo {
	return &AllocationRepo{q: q}
}

// Create persiste un registro de asignación.
func (r *AllocationRepo) Create(allocation *entity.Allocation) error {
	query := `
		INSERT INTO allocations (` + allocationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		allocation.ID, allocation.BatchID, allocation.IMEI,
		allocation.FromID, allocation.FromRole, allocation.ToID, allocation.ToRole,
		allocation.PriorOwnerID, allocation.PriorStatus, allocation.Status,
		allocation.CreatedAt, allocation.CreatedBy, allocation.ReversedAt,
	)
	if err != nil {
		return fmt.Errorf("insert allocation: %w", err)
	}
	return nil
}

// GetByID obtiene una asignación por ID.
func (r *AllocationRepo) GetByID(id string) (*entity.Allocation, error) {
	query := `SELECT ` + allocationColumns + ` FROM allocations WHERE id = $1`
	a, err := scanAllocation(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get allocation by id: %w", err)
	}
	return a, nil
}

// LatestByIMEI devuelve la asignación más reciente del equipo, revertida o no.
func (r *AllocationRepo) LatestByIMEI(imei string) (*entity.Allocation, error) {
	query := `
		SELECT ` + allocationColumns + ` FROM allocations
		WHERE imei = $1 ORDER BY created_at DESC LIMIT 1`
	a, err := scanAllocation(r.q.QueryRow(context.Background(), query, imei))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest allocation: %w", err)
	}
	return a, nil
}

// List lista asignaciones con filtros opcionales.
func (r *AllocationRepo) List(filter repository.AllocationFilter) ([]*entity.Allocation, error) {
	query := `SELECT ` + allocationColumns + ` FROM allocations WHERE 1=1`
	var args []any
	if filter.IMEI != "" {
		args = append(args, filter.IMEI)
		query += fmt.Sprintf(" AND imei = $%d", len(args))
	}
	if filter.FromID != "" {
		args = append(args, filter.FromID)
		query += fmt.Sprintf(" AND from_id = $%d", len(args))
	}
	if filter.ToID != "" {
		args = append(args, filter.ToID)
		query += fmt.Sprintf(" AND to_id = $%d", len(args))
	}
	if filter.BatchID != "" {
		args = append(args, filter.BatchID)
		query += fmt.Sprintf(" AND batch_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list allocations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Allocation
	for rows.Next() {
		a, err := scanAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan allocation: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// ListAll lista todas las asignaciones.
func (r *AllocationRepo) ListAll() ([]*entity.Allocation, error) {
	return r.List(repository.AllocationFilter{})
}

// MarkReversed marca una asignación completada como revertida.
func (r *AllocationRepo) MarkReversed(id string, at time.Time) error {
	query := `
		UPDATE allocations SET status = $2, reversed_at = $3
		WHERE id = $1 AND status = $4`
	tag, err := r.q.Exec(context.Background(), query,
		id, entity.AllocationStatusReversed, at, entity.AllocationStatusCompleted,
	)
	if err != nil {
		return fmt.Errorf("mark allocation reversed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}
	return nil
}

func scanAllocation(row pgx.Row) (*entity.Allocation, error) {
	var a entity.Allocation
	if err := row.Scan(
		&a.ID, &a.BatchID, &a.IMEI,
		&a.FromID, &a.FromRole, &a.ToID, &a.ToRole,
		&a.PriorOwnerID, &a.PriorStatus, &a.Status,
		&a.CreatedAt, &a.CreatedBy, &a.ReversedAt,
	); err != nil {
		return nil, err
	}
	return &a, nil
}
