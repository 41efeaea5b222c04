package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

var _ repository.UnitRepository = (*UnitRepo)(nil)

const unitColumns = `imei, product_id, status, current_owner_id, selling_price,
	commission_fo, commission_tl, commission_rm, source, created_at, updated_at`

// UnitRepo implementación del ledger de equipos sobre PostgreSQL.
type UnitRepo struct {
	q Querier
}

// NewUnitRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewUnitRepository(q Querier) *UnitRepo {
	return &UnitRepo{q: q}
}

// Create registra un equipo recibido. IMEI es la clave primaria: un duplicado
// devuelve ErrDuplicate.
func (r *UnitRepo) Create(unit *entity.InventoryUnit) error {
	query := `
		INSERT INTO inventory_units (` + unitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		unit.IMEI, unit.ProductID, unit.Status, unit.CurrentOwnerID, unit.SellingPrice,
		unit.Commission.FieldOfficer, unit.Commission.TeamLeader, unit.Commission.RegionalManager,
		unit.Source, unit.CreatedAt, unit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert inventory unit: %w", err)
	}
	return nil
}

// GetByIMEI obtiene un equipo por IMEI.
func (r *UnitRepo) GetByIMEI(imei string) (*entity.InventoryUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM inventory_units WHERE imei = $1`
	var u entity.InventoryUnit
	err := r.q.QueryRow(context.Background(), query, imei).Scan(
		&u.IMEI, &u.ProductID, &u.Status, &u.CurrentOwnerID, &u.SellingPrice,
		&u.Commission.FieldOfficer, &u.Commission.TeamLeader, &u.Commission.RegionalManager,
		&u.Source, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get unit by imei: %w", err)
	}
	return &u, nil
}

// List lista equipos con filtros opcionales de estado, dueño y producto.
func (r *UnitRepo) List(filter repository.UnitFilter) ([]*entity.InventoryUnit, error) {
	query := `SELECT ` + unitColumns + ` FROM inventory_units WHERE 1=1`
	var args []any
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.OwnerID != "" {
		args = append(args, filter.OwnerID)
		query += fmt.Sprintf(" AND current_owner_id = $%d", len(args))
	}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		query += fmt.Sprintf(" AND product_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list units: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryUnit
	for rows.Next() {
		var u entity.InventoryUnit
		if err := rows.Scan(
			&u.IMEI, &u.ProductID, &u.Status, &u.CurrentOwnerID, &u.SellingPrice,
			&u.Commission.FieldOfficer, &u.Commission.TeamLeader, &u.Commission.RegionalManager,
			&u.Source, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan unit: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}

// ListAll lista todos los equipos.
func (r *UnitRepo) ListAll() ([]*entity.InventoryUnit, error) {
	return r.List(repository.UnitFilter{})
}

// TransitionCAS aplica la transición guardada por estado esperado en una sola
// sentencia: entre intentos concurrentes exactamente uno afecta la fila. El
// perdedor se clasifica releyendo el estado actual.
func (r *UnitRepo) TransitionCAS(imei, expectedStatus, newStatus, newOwnerID string) error {
	query := `
		UPDATE inventory_units
		SET status = $3, current_owner_id = $4, updated_at = now()
		WHERE imei = $1 AND status = $2`
	tag, err := r.q.Exec(context.Background(), query, imei, expectedStatus, newStatus, newOwnerID)
	if err != nil {
		return fmt.Errorf("transition unit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyCASMiss(imei)
	}
	return nil
}

// RestoreCAS restaura el par (estado, dueño) previo, guardado por el estado y
// dueño actuales del equipo.
func (r *UnitRepo) RestoreCAS(imei, expectedStatus, expectedOwnerID, priorStatus, priorOwnerID string) error {
	query := `
		UPDATE inventory_units
		SET status = $4, current_owner_id = $5, updated_at = now()
		WHERE imei = $1 AND status = $2 AND current_owner_id = $3`
	tag, err := r.q.Exec(context.Background(), query, imei, expectedStatus, expectedOwnerID, priorStatus, priorOwnerID)
	if err != nil {
		return fmt.Errorf("restore unit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.classifyCASMiss(imei)
	}
	return nil
}

// classifyCASMiss relee el equipo para convertir un CAS fallido en el error
// de dominio correcto.
func (r *UnitRepo) classifyCASMiss(imei string) error {
	var status string
	err := r.q.QueryRow(context.Background(), `SELECT status FROM inventory_units WHERE imei = $1`, imei).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("classify unit state: %w", err)
	}
	if status == entity.UnitStatusSold {
		return domain.ErrAlreadySold
	}
	return domain.ErrInvalidTransition
}
