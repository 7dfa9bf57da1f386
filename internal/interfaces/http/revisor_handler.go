package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/usecase"
)

// RevisorHandler revisores y reparto de la cola de revisión documental.
type RevisorHandler struct {
	uc   *usecase.RevisorUseCase
	dist *usecase.DistributionUseCase
}

// NewRevisorHandler construye el handler.
func NewRevisorHandler(uc *usecase.RevisorUseCase, dist *usecase.DistributionUseCase) *RevisorHandler {
	return &RevisorHandler{uc: uc, dist: dist}
}

// Create godoc
// @Summary      Crear revisor
// @Tags         revisores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RevisorRequest  true  "Revisor"
// @Success      201   {object}  dto.RevisorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/admin/revisores [post]
func (h *RevisorHandler) Create(c *fiber.Ctx) error {
	var in dto.RevisorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return respond(c, fiber.StatusCreated, out, err)
}

func (h *RevisorHandler) Update(c *fiber.Ctx) error {
	var in dto.RevisorRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return respond(c, fiber.StatusOK, out, err)
}

// Delete godoc
// @Summary      Eliminar revisor (libera sus trabajadores asignados)
// @Tags         revisores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del revisor"
// @Success      200  {object}  map[string]int
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/revisores/{id} [delete]
func (h *RevisorHandler) Delete(c *fiber.Ctx) error {
	n, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	return respond(c, fiber.StatusOK, fiber.Map{"liberados": n}, err)
}

func (h *RevisorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Distribucion pendientes sin revisor y carga por revisor.
func (h *RevisorHandler) Distribucion(c *fiber.Ctx) error {
	out, err := h.dist.Status()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Distribuir asignaciones manuales trabajador → revisor.
func (h *RevisorHandler) Distribuir(c *fiber.Ctx) error {
	var in dto.DistribuirRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.dist.Distribute(c.UserContext(), in)
	return respond(c, fiber.StatusOK, out, err)
}

// AutoDistribuir godoc
// @Summary      Reparto round-robin de los pendientes sin revisor
// @Tags         revisores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AutoDistribuirRequest  false  "Revisores participantes (vacío = todos)"
// @Success      200   {object}  dto.DistribucionResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/admin/distribucion/auto [post]
func (h *RevisorHandler) AutoDistribuir(c *fiber.Ctx) error {
	var in dto.AutoDistribuirRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.dist.AutoDistribute(c.UserContext(), in)
	return respond(c, fiber.StatusOK, out, err)
}
