package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribucion-api/internal/application/dto"
	"github.com/jhoicas/Distribucion-api/internal/application/reconciliation"
)

// ReconciliationHandler corre el detector de discrepancias bajo demanda.
type ReconciliationHandler struct {
	uc *reconciliation.UseCase
}

// NewReconciliationHandler construye el handler.
func NewReconciliationHandler(uc *reconciliation.UseCase) *ReconciliationHandler {
	return &ReconciliationHandler{uc: uc}
}

// Discrepancies godoc
// @Summary      Detectar discrepancias del ledger, ventas y comisiones
// @Tags         reconciliation
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reconciliation/discrepancies [get]
func (h *ReconciliationHandler) Discrepancies(c *fiber.Ctx) error {
	list, err := h.uc.Run()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{
		"total":         len(list),
		"discrepancies": list,
	})
}
