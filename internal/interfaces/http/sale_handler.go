package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribucion-api/internal/application/dto"
	"github.com/jhoicas/Distribucion-api/internal/application/sale"
	"github.com/jhoicas/Distribucion-api/internal/domain"
)

// SaleHandler maneja el cierre de ventas y la reserva advisory.
type SaleHandler struct {
	uc *sale.UseCase
}

// NewSaleHandler construye el handler.
func NewSaleHandler(uc *sale.UseCase) *SaleHandler {
	return &SaleHandler{uc: uc}
}

// Create godoc
// @Summary      Cerrar una venta (teléfono por IMEI o accesorio por cantidad)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "imei o product_id+quantity, amount, payment_method"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	s, err := h.uc.CompleteSale(c.Context(), sellerID, in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
		case domain.ErrActorNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ACTOR_NOT_FOUND", Message: "actor no encontrado"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo o producto no encontrado"})
		case domain.ErrNotAuthorizedToSell:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NOT_AUTHORIZED", Message: "el vendedor no tiene la custodia del equipo"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "actor inactivo"})
		case domain.ErrAlreadySold:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_SOLD", Message: "el equipo ya fue vendido"})
		case domain.ErrUnitReserved:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RESERVED", Message: "el equipo está reservado por otro vendedor"})
		case domain.ErrInsufficientStock:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(sale.ToResponse(s))
}

// Reserve godoc
// @Summary      Reservar un equipo antes de cobrar (advisory, con TTL)
// @Tags         sales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReserveUnitRequest  true  "imei"
// @Success      200   {object}  dto.ReserveUnitResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/reserve [post]
func (h *SaleHandler) Reserve(c *fiber.Ctx) error {
	sellerID := GetUserID(c)
	if sellerID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ReserveUnitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	expiresAt, err := h.uc.Reserve(c.Context(), in.IMEI, sellerID)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "imei requerido"})
		}
		if err == domain.ErrUnitReserved {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "RESERVED", Message: "el equipo está reservado por otro vendedor"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ReserveUnitResponse{IMEI: in.IMEI, ExpiresAt: expiresAt})
}
