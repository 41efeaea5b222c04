// Package apptest provee un almacén en memoria para los tests de los casos
// de uso. Reproduce la semántica del backend real que importa para el motor:
// el guard CAS por estado esperado (un ganador por carrera) y la atomicidad
// por transacción (snapshot + restauración en caso de error).
package apptest

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// Store implementa todos los puertos de repositorio y los TxRunner de
// asignación y venta sobre mapas en memoria protegidos por mutex.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	actors      map[string]*entity.Actor
	units       map[string]*entity.InventoryUnit
	products    map[string]*entity.Product
	allocations []*entity.Allocation
	sales       []*entity.Sale
	commissions []*entity.Commission
}

// NewStore construye el almacén vacío.
func NewStore() *Store {
	return &Store{
		actors:   make(map[string]*entity.Actor),
		units:    make(map[string]*entity.InventoryUnit),
		products: make(map[string]*entity.Product),
	}
}

// SeedActor inserta un actor directamente (sin validaciones).
func (s *Store) SeedActor(a *entity.Actor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	s.actors[a.ID] = &cp
}

// SeedUnit inserta un equipo directamente.
func (s *Store) SeedUnit(u *entity.InventoryUnit) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.units[u.IMEI] = &cp
}

// SeedProduct inserta un producto directamente.
func (s *Store) SeedProduct(p *entity.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.products[p.ID] = &cp
}

// ── ActorRepository ──────────────────────────────────────────────────────────

var _ repository.ActorRepository = (*Store)(nil)

func (s *Store) Create(a *entity.Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.actors[a.ID]; ok {
		return domain.ErrDuplicate
	}
	for _, existing := range s.actors {
		if existing.Email != "" && existing.Email == a.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *a
	s.actors[a.ID] = &cp
	return nil
}

func (s *Store) GetByID(id string) (*entity.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.actors[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (s *Store) GetByEmail(email string) (*entity.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.actors {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *Store) List(filter repository.ActorFilter) ([]*entity.Actor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Actor
	for _, a := range s.actors {
		if filter.Role != "" && a.Role != filter.Role {
			continue
		}
		if filter.Region != "" && a.Region != filter.Region {
			continue
		}
		if filter.ParentID != "" && a.ParentID != filter.ParentID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (s *Store) ListAll() ([]*entity.Actor, error) {
	return s.List(repository.ActorFilter{})
}

func (s *Store) Update(a *entity.Actor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.actors[a.ID]; !ok {
		return domain.ErrActorNotFound
	}
	cp := *a
	s.actors[a.ID] = &cp
	return nil
}

func (s *Store) UpdateParent(id, parentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.actors[id]
	if !ok {
		return domain.ErrActorNotFound
	}
	a.ParentID = parentID
	return nil
}

func (s *Store) Deactivate(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.actors[id]
	if !ok {
		return domain.ErrActorNotFound
	}
	a.Status = entity.ActorStatusInactive
	return nil
}

// ── UnitRepository ───────────────────────────────────────────────────────────

// Units es la vista de unidades como puerto de repositorio.
func (s *Store) Units() repository.UnitRepository { return (*unitStore)(s) }

type unitStore Store

var _ repository.UnitRepository = (*unitStore)(nil)

func (s *unitStore) Create(u *entity.InventoryUnit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.units[u.IMEI]; ok {
		return domain.ErrDuplicate
	}
	cp := *u
	s.units[u.IMEI] = &cp
	return nil
}

func (s *unitStore) GetByIMEI(imei string) (*entity.InventoryUnit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.units[imei]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (s *unitStore) List(filter repository.UnitFilter) ([]*entity.InventoryUnit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.InventoryUnit
	for _, u := range s.units {
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		if filter.OwnerID != "" && u.CurrentOwnerID != filter.OwnerID {
			continue
		}
		if filter.ProductID != "" && u.ProductID != filter.ProductID {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (s *unitStore) ListAll() ([]*entity.InventoryUnit, error) {
	return s.List(repository.UnitFilter{})
}

// TransitionCAS reproduce el UPDATE guardado por estado esperado: exactamente
// un ganador entre intentos concurrentes.
func (s *unitStore) TransitionCAS(imei, expectedStatus, newStatus, newOwnerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.units[imei]
	if !ok {
		return domain.ErrNotFound
	}
	if u.Status != expectedStatus {
		if u.Status == entity.UnitStatusSold {
			return domain.ErrAlreadySold
		}
		return domain.ErrInvalidTransition
	}
	u.Status = newStatus
	u.CurrentOwnerID = newOwnerID
	u.UpdatedAt = time.Now()
	return nil
}

func (s *unitStore) RestoreCAS(imei, expectedStatus, expectedOwnerID, priorStatus, priorOwnerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.units[imei]
	if !ok {
		return domain.ErrNotFound
	}
	if u.Status != expectedStatus || u.CurrentOwnerID != expectedOwnerID {
		if u.Status == entity.UnitStatusSold {
			return domain.ErrAlreadySold
		}
		return domain.ErrInvalidTransition
	}
	u.Status = priorStatus
	u.CurrentOwnerID = priorOwnerID
	u.UpdatedAt = time.Now()
	return nil
}

// ── AllocationRepository ─────────────────────────────────────────────────────

// Allocations es la vista de asignaciones como puerto de repositorio.
func (s *Store) Allocations() repository.AllocationRepository { return (*allocationStore)(s) }

type allocationStore Store

var _ repository.AllocationRepository = (*allocationStore)(nil)

func (s *allocationStore) Create(a *entity.Allocation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *a
	s.allocations = append(s.allocations, &cp)
	return nil
}

func (s *allocationStore) GetByID(id string) (*entity.Allocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.allocations {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *allocationStore) LatestByIMEI(imei string) (*entity.Allocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.allocations) - 1; i >= 0; i-- {
		if s.allocations[i].IMEI == imei {
			cp := *s.allocations[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *allocationStore) List(filter repository.AllocationFilter) ([]*entity.Allocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Allocation
	for _, a := range s.allocations {
		if filter.IMEI != "" && a.IMEI != filter.IMEI {
			continue
		}
		if filter.FromID != "" && a.FromID != filter.FromID {
			continue
		}
		if filter.ToID != "" && a.ToID != filter.ToID {
			continue
		}
		if filter.BatchID != "" && a.BatchID != filter.BatchID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (s *allocationStore) ListAll() ([]*entity.Allocation, error) {
	return s.List(repository.AllocationFilter{})
}

func (s *allocationStore) MarkReversed(id string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.allocations {
		if a.ID == id {
			a.Status = entity.AllocationStatusReversed
			a.ReversedAt = &at
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── SaleRepository ───────────────────────────────────────────────────────────

// Sales es la vista de ventas como puerto de repositorio.
func (s *Store) Sales() repository.SaleRepository { return (*saleStore)(s) }

type saleStore Store

var _ repository.SaleRepository = (*saleStore)(nil)

func (s *saleStore) Create(sale *entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sale
	s.sales = append(s.sales, &cp)
	return nil
}

func (s *saleStore) GetByID(id string) (*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.sales {
		if v.ID == id {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *saleStore) List(filter repository.SaleFilter) ([]*entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Sale
	for _, v := range s.sales {
		if filter.IMEI != "" && v.IMEI != filter.IMEI {
			continue
		}
		if filter.SellerID != "" && v.SellerID != filter.SellerID {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return out, nil
}

func (s *saleStore) ListAll() ([]*entity.Sale, error) {
	return s.List(repository.SaleFilter{})
}

// ── CommissionRepository ─────────────────────────────────────────────────────

// Commissions es la vista de comisiones como puerto de repositorio.
func (s *Store) Commissions() repository.CommissionRepository { return (*commissionStore)(s) }

type commissionStore Store

var _ repository.CommissionRepository = (*commissionStore)(nil)

func (s *commissionStore) CreateBatch(rows []*entity.Commission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range rows {
		cp := *c
		s.commissions = append(s.commissions, &cp)
	}
	return nil
}

func (s *commissionStore) GetByIDs(ids []string) ([]*entity.Commission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*entity.Commission
	for _, c := range s.commissions {
		if want[c.ID] {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *commissionStore) List(filter repository.CommissionFilter) ([]*entity.Commission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Commission
	for _, c := range s.commissions {
		if filter.BeneficiaryID != "" && c.BeneficiaryID != filter.BeneficiaryID {
			continue
		}
		if filter.SaleID != "" && c.SaleID != filter.SaleID {
			continue
		}
		if filter.Status != "" && c.Status != filter.Status {
			continue
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (s *commissionStore) ListAll() ([]*entity.Commission, error) {
	return s.List(repository.CommissionFilter{})
}

func (s *commissionStore) PayPending(ids []string, at time.Time) ([]*entity.Commission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []*entity.Commission
	for _, c := range s.commissions {
		if !want[c.ID] {
			continue
		}
		if c.Status == entity.CommissionStatusPending {
			c.Status = entity.CommissionStatusPaid
			paidAt := at
			c.PaidAt = &paidAt
		}
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

// ── ProductRepository ────────────────────────────────────────────────────────

// Products es la vista de productos como puerto de repositorio.
func (s *Store) Products() repository.ProductRepository { return (*productStore)(s) }

type productStore Store

var _ repository.ProductRepository = (*productStore)(nil)

func (s *productStore) Create(p *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (s *productStore) GetByID(id string) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (s *productStore) List(category string) ([]*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.Product
	for _, p := range s.products {
		if category != "" && p.Category != category {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (s *productStore) DecrementStockCAS(id string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	if p.StockQuantity < quantity {
		return domain.ErrInsufficientStock
	}
	p.StockQuantity -= quantity
	return nil
}

// ── TxRunner de asignación y de venta ────────────────────────────────────────

// Run serializa transacciones y restaura el estado completo si fn falla,
// imitando el Commit/Rollback del backend real.
func (s *Store) Run(ctx context.Context, fn func(
	unitRepo repository.UnitRepository,
	allocRepo repository.AllocationRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	snap := s.snapshot()
	if err := fn(s.Units(), s.Allocations()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// RunSale análogo a Run para el cierre de venta.
func (s *Store) RunSale(ctx context.Context, fn func(
	unitRepo repository.UnitRepository,
	saleRepo repository.SaleRepository,
	commissionRepo repository.CommissionRepository,
	productRepo repository.ProductRepository,
) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	snap := s.snapshot()
	if err := fn(s.Units(), s.Sales(), s.Commissions(), s.Products()); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type storeSnapshot struct {
	units       map[string]*entity.InventoryUnit
	products    map[string]*entity.Product
	allocations []*entity.Allocation
	sales       []*entity.Sale
	commissions []*entity.Commission
}

func (s *Store) snapshot() storeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := storeSnapshot{
		units:    make(map[string]*entity.InventoryUnit, len(s.units)),
		products: make(map[string]*entity.Product, len(s.products)),
	}
	for k, v := range s.units {
		cp := *v
		snap.units[k] = &cp
	}
	for k, v := range s.products {
		cp := *v
		snap.products[k] = &cp
	}
	for _, a := range s.allocations {
		cp := *a
		snap.allocations = append(snap.allocations, &cp)
	}
	for _, v := range s.sales {
		cp := *v
		snap.sales = append(snap.sales, &cp)
	}
	for _, c := range s.commissions {
		cp := *c
		snap.commissions = append(snap.commissions, &cp)
	}
	return snap
}

func (s *Store) restore(snap storeSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units = snap.units
	s.products = snap.products
	s.allocations = snap.allocations
	s.sales = snap.sales
	s.commissions = snap.commissions
}
