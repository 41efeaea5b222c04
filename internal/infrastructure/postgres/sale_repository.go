package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, imei, product_id, quantity, seller_id,
	field_officer_id, team_leader_id, regional_manager_id,
	amount, payment_method, payment_reference, receipt_number, created_at, created_by`

// SaleRepo implementación del registro de ventas sobre PostgreSQL.
// Las ventas son inmutables: solo INSERT y SELECT.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta con la foto de la cadena de custodia.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (` + saleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.IMEI, sale.ProductID, sale.Quantity, sale.SellerID,
		sale.FieldOfficerID, sale.TeamLeaderID, sale.RegionalManagerID,
		sale.Amount, sale.PaymentMethod, sale.PaymentReference, sale.ReceiptNumber,
		sale.CreatedAt, sale.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	s, err := scanSale(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale by id: %w", err)
	}
	return s, nil
}

// List lista ventas con filtros opcionales de IMEI y vendedor.
func (r *SaleRepo) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`
	var args []any
	if filter.IMEI != "" {
		args = append(args, filter.IMEI)
		query += fmt.Sprintf(" AND imei = $%d", len(args))
	}
	if filter.SellerID != "" {
		args = append(args, filter.SellerID)
		query += fmt.Sprintf(" AND seller_id = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListAll lista todas las ventas.
func (r *SaleRepo) ListAll() ([]*entity.Sale, error) {
	return r.List(repository.SaleFilter{})
}

func scanSale(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	if err := row.Scan(
		&s.ID, &s.IMEI, &s.ProductID, &s.Quantity, &s.SellerID,
		&s.FieldOfficerID, &s.TeamLeaderID, &s.RegionalManagerID,
		&s.Amount, &s.PaymentMethod, &s.PaymentReference, &s.ReceiptNumber,
		&s.CreatedAt, &s.CreatedBy,
	); err != nil {
		return nil, err
	}
	return &s, nil
}
