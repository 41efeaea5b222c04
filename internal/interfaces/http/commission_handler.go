package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribucion-api/internal/application/commission"
	"github.com/jhoicas/Distribucion-api/internal/application/dto"
	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// CommissionHandler maneja consulta y pago de comisiones.
type CommissionHandler struct {
	uc *commission.UseCase
}

// NewCommissionHandler construye el handler.
func NewCommissionHandler(uc *commission.UseCase) *CommissionHandler {
	return &CommissionHandler{uc: uc}
}

// List godoc
// @Summary      Listar comisiones
// @Tags         commissions
// @Security     Bearer
// @Produce      json
// @Param        beneficiary_id  query  string  false  "filtrar por beneficiario"
// @Param        sale_id         query  string  false  "filtrar por venta"
// @Param        status          query  string  false  "pending | paid | reversed"
// @Success      200  {array}  dto.CommissionResponse
// @Router       /api/commissions [get]
func (h *CommissionHandler) List(c *fiber.Ctx) error {
	filter := repository.CommissionFilter{
		BeneficiaryID: c.Query("beneficiary_id"),
		SaleID:        c.Query("sale_id"),
		Status:        c.Query("status"),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// BulkPay godoc
// @Summary      Pagar comisiones pendientes (idempotente)
// @Tags         commissions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkPayRequest  true  "commission_ids"
// @Success      200   {array}   dto.CommissionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/commissions/pay [post]
func (h *CommissionHandler) BulkPay(c *fiber.Ctx) error {
	var in dto.BulkPayRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.BulkPay(in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "commission_ids requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
