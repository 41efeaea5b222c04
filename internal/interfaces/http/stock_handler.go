package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribucion-api/internal/application/dto"
	"github.com/jhoicas/Distribucion-api/internal/application/stock"
	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// StockHandler maneja la recepción de stock, el ledger de equipos y los productos.
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Intake godoc
// @Summary      Recepción de equipos (IMEIs)
// @Tags         units
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.IntakeUnitsRequest  true  "product_id, imeis, selling_price, commission, source"
// @Success      201   {array}   dto.IntakeItemResult
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/units/intake [post]
func (h *StockHandler) Intake(c *fiber.Ctx) error {
	var in dto.IntakeUnitsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	results, err := h.uc.Intake(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(results)
}

// ListUnits godoc
// @Summary      Listar equipos del ledger
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Param        status      query  string  false  "IN_STOCK | ALLOCATED | SOLD"
// @Param        owner_id    query  string  false  "custodio actual"
// @Param        product_id  query  string  false  "modelo"
// @Success      200  {array}  dto.UnitResponse
// @Router       /api/units [get]
func (h *StockHandler) ListUnits(c *fiber.Ctx) error {
	filter := repository.UnitFilter{
		Status:    c.Query("status"),
		OwnerID:   c.Query("owner_id"),
		ProductID: c.Query("product_id"),
	}
	out, err := h.uc.ListUnits(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetUnit godoc
// @Summary      Obtener un equipo por IMEI
// @Tags         units
// @Security     Bearer
// @Produce      json
// @Param        imei  path      string  true  "IMEI"
// @Success      200   {object}  dto.UnitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/units/{imei} [get]
func (h *StockHandler) GetUnit(c *fiber.Ctx) error {
	out, err := h.uc.GetUnit(c.Params("imei"))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CreateProduct godoc
// @Summary      Crear producto (teléfono o accesorio)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "name, model, category, selling_price, commission, stock_quantity"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *StockHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	product, err := h.uc.CreateProduct(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "producto duplicado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": product.ID})
}

// ListProducts godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "phone | accessory"
// @Success      200  {array}  entity.Product
// @Router       /api/products [get]
func (h *StockHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.Query("category"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
