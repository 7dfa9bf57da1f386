package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/usecase"
)

// LifecycleHandler transiciones del ciclo de vida del candidato.
type LifecycleHandler struct {
	uc *usecase.LifecycleUseCase
}

// NewLifecycleHandler construye el handler.
func NewLifecycleHandler(uc *usecase.LifecycleUseCase) *LifecycleHandler {
	return &LifecycleHandler{uc: uc}
}

func parseMotivo(c *fiber.Ctx) (string, bool) {
	var in dto.MotivoRequest
	if err := c.BodyParser(&in); err != nil {
		return "", false
	}
	return in.Motivo, true
}

// Validar godoc
// @Summary      Validar documentación
// @Tags         ciclo-de-vida
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del trabajador"
// @Success      200  {object}  dto.TrabajadorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/revisor/trabajadores/{id}/validar [post]
func (h *LifecycleHandler) Validar(c *fiber.Ctx) error {
	out, err := h.uc.ValidateDocuments(c.UserContext(), c.Params("id"))
	return respond(c, fiber.StatusOK, out, err)
}

// RechazarDocumental godoc
// @Summary      Rechazar documentación
// @Tags         ciclo-de-vida
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "ID del trabajador"
// @Param        body  body  dto.MotivoRequest  true  "Motivo (obligatorio)"
// @Success      200   {object}  dto.TrabajadorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/revisor/trabajadores/{id}/rechazar-documental [post]
func (h *LifecycleHandler) RechazarDocumental(c *fiber.Ctx) error {
	motivo, ok := parseMotivo(c)
	if !ok {
		return badBody(c)
	}
	out, err := h.uc.RejectDocuments(c.UserContext(), c.Params("id"), motivo)
	return respond(c, fiber.StatusOK, out, err)
}

// Revalidar devuelve un rechazo documental a revisión.
func (h *LifecycleHandler) Revalidar(c *fiber.Ctx) error {
	out, err := h.uc.RequestRevalidation(c.UserContext(), c.Params("id"))
	return respond(c, fiber.StatusOK, out, err)
}

// Asignar godoc
// @Summary      Asignar trabajador del pool libre a un proyecto
// @Tags         ciclo-de-vida
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                      true  "ID del trabajador"
// @Param        body  body  dto.AsignarProyectoRequest  true  "Proyecto"
// @Success      200   {object}  dto.TrabajadorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/revisor/trabajadores/{id}/asignar [post]
func (h *LifecycleHandler) Asignar(c *fiber.Ctx) error {
	var in dto.AsignarProyectoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AssignToProject(c.UserContext(), c.Params("id"), in.ProyectoID)
	return respond(c, fiber.StatusOK, out, err)
}

// Avanzar godoc
// @Summary      Aprobar al candidato en su etapa actual
// @Tags         ciclo-de-vida
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del trabajador"
// @Success      200  {object}  dto.TrabajadorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/usuario/trabajadores/{id}/avanzar [post]
func (h *LifecycleHandler) Avanzar(c *fiber.Ctx) error {
	out, err := h.uc.AdvanceStage(c.UserContext(), actor(c), c.Params("id"))
	return respond(c, fiber.StatusOK, out, err)
}

// RechazarEtapa rechaza al candidato en su etapa y lo devuelve al pool libre.
func (h *LifecycleHandler) RechazarEtapa(c *fiber.Ctx) error {
	motivo, ok := parseMotivo(c)
	if !ok {
		return badBody(c)
	}
	out, err := h.uc.RejectAtStage(c.UserContext(), actor(c), c.Params("id"), motivo)
	return respond(c, fiber.StatusOK, out, err)
}

// AvanzarContratacion Carpeta Solicitada → A acreditar → Contratado.
func (h *LifecycleHandler) AvanzarContratacion(c *fiber.Ctx) error {
	out, err := h.uc.AdvanceContracting(c.UserContext(), actor(c), c.Params("id"))
	return respond(c, fiber.StatusOK, out, err)
}

// SolicitarCarpetas godoc
// @Summary      Solicitud masiva de carpetas
// @Tags         ciclo-de-vida
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string          true  "ID del proyecto"
// @Param        body  body  dto.IDsRequest  true  "Trabajadores y nota"
// @Success      200   {object}  dto.BulkResponse
// @Router       /api/usuario/proyectos/{id}/carpetas [post]
func (h *LifecycleHandler) SolicitarCarpetas(c *fiber.Ctx) error {
	var in dto.IDsRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.RequestFolders(c.UserContext(), actor(c), c.Params("id"), in)
	return respond(c, fiber.StatusOK, out, err)
}
