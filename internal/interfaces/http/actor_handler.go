package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Distribucion-api/internal/application/actor"
	"github.com/jhoicas/Distribucion-api/internal/application/dto"
	"github.com/jhoicas/Distribucion-api/internal/domain"
	"github.com/jhoicas/Distribucion-api/internal/domain/repository"
)

// ActorHandler maneja las peticiones HTTP de la jerarquía de actores (admin).
type ActorHandler struct {
	uc *actor.UseCase
}

// NewActorHandler construye el handler.
func NewActorHandler(uc *actor.UseCase) *ActorHandler {
	return &ActorHandler{uc: uc}
}

// Create godoc
// @Summary      Dar de alta un actor
// @Tags         actors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateActorRequest  true  "name, email, password, role, region, parent_id"
// @Success      201   {object}  dto.ActorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/actors [post]
func (h *ActorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateActorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrInvalidInput || err == domain.ErrInvalidHierarchy {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar actores
// @Tags         actors
// @Security     Bearer
// @Produce      json
// @Param        role       query  string  false  "regional_manager | team_leader | field_officer"
// @Param        region     query  string  false  "filtrar por región"
// @Param        parent_id  query  string  false  "filtrar por superior directo"
// @Success      200  {array}   dto.ActorResponse
// @Router       /api/actors [get]
func (h *ActorHandler) List(c *fiber.Ctx) error {
	filter := repository.ActorFilter{
		Role:     c.Query("role"),
		Region:   c.Query("region"),
		ParentID: c.Query("parent_id"),
		Status:   c.Query("status"),
	}
	out, err := h.uc.List(filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener un actor
// @Tags         actors
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "actor ID"
// @Success      200  {object}  dto.ActorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/actors/{id} [get]
func (h *ActorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if err == domain.ErrActorNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Desactivar un actor (soft delete)
// @Tags         actors
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "actor ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/actors/{id} [delete]
func (h *ActorHandler) Deactivate(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		if err == domain.ErrActorNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "actor desactivado"})
}

// Reassign godoc
// @Summary      Reasignar un field officer a otro team leader
// @Tags         actors
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "field officer ID"
// @Param        body  body  dto.ReassignRequest  true  "new_team_leader_id"
// @Success      200   {object}  dto.ActorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/actors/{id}/reassign [patch]
func (h *ActorHandler) Reassign(c *fiber.Ctx) error {
	var in dto.ReassignRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Reassign(c.Params("id"), in.NewTeamLeaderID)
	if err != nil {
		if err == domain.ErrInvalidHierarchy {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_HIERARCHY", Message: "reasignación fuera de la jerarquía o de la región"})
		}
		if err == domain.ErrActorNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "actor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
