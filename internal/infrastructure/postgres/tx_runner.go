package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/Distribucion-api/internal/application/allocation"
	"github.com/jhoicas/Distribucion-api/internal/application/sale"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// Ensure TxRunner implements allocation.TxRunner and sale.TxRunner.
var _ allocation.TxRunner = (*TxRunner)(nil)
var _ sale.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback (transición del ledger + registro de asignación).
func (r *TxRunner) Run(ctx context.Context, fn func(
	unitRepo repository.UnitRepository,
	allocRepo repository.AllocationRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	unitRepo := NewUnitRepository(tx)
	allocRepo := NewAllocationRepository(tx)

	if err := fn(unitRepo, allocRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunSale inicia una transacción con los repos del cierre de venta
// (ledger + venta + comisiones + stock de accesorios).
func (r *TxRunner) RunSale(ctx context.Context, fn func(
	unitRepo repository.UnitRepository,
	saleRepo repository.SaleRepository,
	commissionRepo repository.CommissionRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	unitRepo := NewUnitRepository(tx)
	saleRepo := NewSaleRepository(tx)
	commissionRepo := NewCommissionRepository(tx)
	productRepo := NewProductRepository(tx)

	if err := fn(unitRepo, saleRepo, commissionRepo, productRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
