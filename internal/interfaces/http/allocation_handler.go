package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribucion-api/internal/application/allocation"
	"github.com/jhoicas/Distribucion-api/internal/application/dto"
	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// AllocationHandler maneja las transferencias de custodia y sus reversiones.
type AllocationHandler struct {
	uc *allocation.UseCase
}

// NewAllocationHandler construye el handler.
func NewAllocationHandler(uc *allocation.UseCase) *AllocationHandler {
	return &AllocationHandler{uc: uc}
}

// Create godoc
// @Summary      Asignar equipos un nivel hacia abajo (simple o lote)
// @Tags         allocations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AllocateRequest  true  "from_id, to_id, imeis"
// @Success      201   {object}  dto.AllocateBatchResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/allocations [post]
func (h *AllocationHandler) Create(c *fiber.Ctx) error {
	var in dto.AllocateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.IMEIs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "imeis requeridos"})
	}
	createdBy := GetUserID(c)

	// Asignación simple: errores mapeados a status HTTP directamente.
	if len(in.IMEIs) == 1 {
		alloc, err := h.uc.Allocate(c.Context(), in.FromID, in.ToID, in.IMEIs[0], createdBy)
		if err != nil {
			return allocationError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(allocation.ToResponse(alloc))
	}

	// Lote: cada ítem reporta su resultado; un fallo no aborta el resto.
	resp := h.uc.AllocateBatch(c.Context(), in.FromID, in.ToID, in.IMEIs, createdBy)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Reverse godoc
// @Summary      Revertir la asignación vigente de un equipo
// @Tags         allocations
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "allocation ID"
// @Success      200  {object}  dto.AllocationResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/allocations/{id}/reverse [post]
func (h *AllocationHandler) Reverse(c *fiber.Ctx) error {
	alloc, err := h.uc.Reverse(c.Context(), c.Params("id"))
	if err != nil {
		return allocationError(c, err)
	}
	return c.JSON(allocation.ToResponse(alloc))
}

// List godoc
// @Summary      Listar asignaciones
// @Tags         allocations
// @Security     Bearer
// @Produce      json
// @Param        imei      query  string  false  "filtrar por IMEI"
// @Param        from_id   query  string  false  "origen"
// @Param        to_id     query  string  false  "destino"
// @Param        batch_id  query  string  false  "lote"
// @Success      200  {array}  dto.AllocationResponse
// @Router       /api/allocations [get]
func (h *AllocationHandler) List(c *fiber.Ctx) error {
	filter := repository.AllocationFilter{
		IMEI:    c.Query("imei"),
		FromID:  c.Query("from_id"),
		ToID:    c.Query("to_id"),
		BatchID: c.Query("batch_id"),
		Status:  c.Query("status"),
	}
	rows, err := h.uc.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]*dto.AllocationResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, allocation.ToResponse(a))
	}
	return c.JSON(out)
}

// allocationError mapea los errores del motor de asignación a status HTTP.
func allocationError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrActorNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ACTOR_NOT_FOUND", Message: "actor no encontrado"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo o asignación no encontrada"})
	case domain.ErrHierarchyViolation:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "HIERARCHY_VIOLATION", Message: "destino fuera de la jerarquía o de la región"})
	case domain.ErrNotOwner:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "NOT_OWNER", Message: "el origen no tiene la custodia del equipo"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "actor inactivo"})
	case domain.ErrAlreadySold:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ALREADY_SOLD", Message: "el equipo ya fue vendido"})
	case domain.ErrAllocationNotCurrent:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NOT_CURRENT", Message: "solo la asignación vigente es reversible"})
	case domain.ErrInvalidTransition:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: "transición de estado inválida"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
