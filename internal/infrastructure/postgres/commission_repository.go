package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

var _ repository.CommissionRepository = (*CommissionRepo)(nil)

const commissionColumns = `id, sale_id, beneficiary_id, role, amount, status, created_at, paid_at`

// CommissionRepo implementación del puerto CommissionRepository sobre PostgreSQL.
type CommissionRepo struct {
	q Querier
}

// NewCommissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCommissionRepository(q Querier) *CommissionRepo {
	return &CommissionRepo{q: q}
}

// CreateBatch persiste las comisiones derivadas de una venta.
func (r *CommissionRepo) CreateBatch(commissions []*entity.Commission) error {
	query := `
		INSERT INTO commissions (` + commissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	for _, c := range commissions {
		_, err := r.q.Exec(context.Background(), query,
			c.ID, c.SaleID, c.BeneficiaryID, c.Role, c.Amount, c.Status, c.CreatedAt, c.PaidAt,
		)
		if err != nil {
			return fmt.Errorf("insert commission: %w", err)
		}
	}
	return nil
}

// GetByIDs obtiene comisiones por sus IDs.
func (r *CommissionRepo) GetByIDs(ids []string) ([]*entity.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE id = ANY($1)`
	rows, err := r.q.Query(context.Background(), query, ids)
	if err != nil {
		return nil, fmt.Errorf("get commissions by ids: %w", err)
	}
	defer rows.Close()
	return collectCommissions(rows)
}

// List lista comisiones con filtros opcionales.
func (r *CommissionRepo) List(filter repository.CommissionFilter) ([]*entity.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE 1=1`
	var args []any
	if filter.BeneficiaryID != "" {
		args = append(args, filter.BeneficiaryID)
		query += fmt.Sprintf(" AND beneficiary_id = $%d", len(args))
	}
	if filter.SaleID != "" {
		args = append(args, filter.SaleID)
		query += fmt.Sprintf(" AND sale_id = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list commissions: %w", err)
	}
	defer rows.Close()
	return collectCommissions(rows)
}

// ListAll lista todas las comisiones.
func (r *CommissionRepo) ListAll() ([]*entity.Commission, error) {
	return r.List(repository.CommissionFilter{})
}

// PayPending marca pending → paid para los IDs dados. El guard por estado
// hace el pago idempotente: una comisión ya pagada o revertida no cambia.
// Devuelve el estado resultante de todas las comisiones encontradas.
func (r *CommissionRepo) PayPending(ids []string, at time.Time) ([]*entity.Commission, error) {
	query := `
		UPDATE commissions SET status = $2, paid_at = $3
		WHERE id = ANY($1) AND status = $4`
	_, err := r.q.Exec(context.Background(), query,
		ids, entity.CommissionStatusPaid, at, entity.CommissionStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("pay commissions: %w", err)
	}
	return r.GetByIDs(ids)
}

func collectCommissions(rows pgx.Rows) ([]*entity.Commission, error) {
	var list []*entity.Commission
	for rows.Next() {
		var c entity.Commission
		if err := rows.Scan(
			&c.ID, &c.SaleID, &c.BeneficiaryID, &c.Role, &c.Amount, &c.Status, &c.CreatedAt, &c.PaidAt,
		); err != nil {
			return nil, fmt.Errorf("scan commission: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
