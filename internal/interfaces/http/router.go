package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribucion-api/internal/application/actor"
	"github.com/jhoicas/Distribucion-api/internal/application/allocation"
	"github.com/jhoicas/Distribucion-api/internal/application/auth"
	"github.com/jhoicas/Distribucion-api/internal/application/commission"
	"github.com/jhoicas/Distribucion-api/internal/application/reconciliation"
	"github.com/jhoicas/Distribucion-api/internal/application/sale"
	"github.com/jhoicas/Distribucion-api/internal/application/stock"
	"github.com/jhoicas/Distribucion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ActorUC          *actor.UseCase
	StockUC          *stock.UseCase
	AllocationUC     *allocation.UseCase
	SaleUC           *sale.UseCase
	CommissionUC     *commission.UseCase
	ReconciliationUC *reconciliation.UseCase
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Actors (alta y baja solo admin)
	actors := protected.Group("/actors")
	actorHandler := NewActorHandler(deps.ActorUC)
	actors.Post("/", adminOnly, actorHandler.Create)
	actors.Get("/", actorHandler.List)
	actors.Get("/:id", actorHandler.GetByID)
	actors.Delete("/:id", adminOnly, actorHandler.Deactivate)
	actors.Patch("/:id/reassign", actorHandler.Reassign)

	// Units: ledger de equipos (recepción solo admin)
	units := protected.Group("/units")
	stockHandler := NewStockHandler(deps.StockUC)
	units.Post("/intake", adminOnly, stockHandler.Intake)
	units.Get("/", stockHandler.ListUnits)
	units.Get("/:imei", stockHandler.GetUnit)

	// Products (alta solo admin)
	products := protected.Group("/products")
	products.Post("/", adminOnly, stockHandler.CreateProduct)
	products.Get("/", stockHandler.ListProducts)

	// Allocations: transferencias de custodia
	allocations := protected.Group("/allocations")
	allocationHandler := NewAllocationHandler(deps.AllocationUC)
	allocations.Post("/", allocationHandler.Create)
	allocations.Get("/", allocationHandler.List)
	allocations.Post("/:id/reverse", allocationHandler.Reverse)

	// Sales: cierre de ventas y reserva advisory
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Post("/reserve", saleHandler.Reserve)

	// Commissions (pago solo admin)
	commissions := protected.Group("/commissions")
	commissionHandler := NewCommissionHandler(deps.CommissionUC)
	commissions.Get("/", commissionHandler.List)
	commissions.Post("/pay", adminOnly, commissionHandler.BulkPay)

	// Reconciliation
	recon := protected.Group("/reconciliation")
	reconciliationHandler := NewReconciliationHandler(deps.ReconciliationUC)
	recon.Get("/discrepancies", reconciliationHandler.Discrepancies)
}
