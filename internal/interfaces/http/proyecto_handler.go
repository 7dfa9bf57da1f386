package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/usecase"
)

// ProyectoHandler alta, edición y consulta de proyectos. Los proyectos no se eliminan.
type ProyectoHandler struct {
	uc *usecase.ProyectoUseCase
}

// NewProyectoHandler construye el handler.
func NewProyectoHandler(uc *usecase.ProyectoUseCase) *ProyectoHandler {
	return &ProyectoHandler{uc: uc}
}

// Create godoc
// @Summary      Crear proyecto (borrador o publicado)
// @Tags         proyectos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProyectoRequest  true  "Proyecto"
// @Success      201   {object}  dto.ProyectoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/admin/proyectos [post]
func (h *ProyectoHandler) Create(c *fiber.Ctx) error {
	var in dto.ProyectoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	return respond(c, fiber.StatusCreated, out, err)
}

// Update godoc
// @Summary      Editar proyecto
// @Tags         proyectos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del proyecto"
// @Param        body  body  dto.ProyectoRequest  true  "Proyecto"
// @Success      200   {object}  dto.ProyectoResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/admin/proyectos/{id} [put]
func (h *ProyectoHandler) Update(c *fiber.Ctx) error {
	var in dto.ProyectoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	return respond(c, fiber.StatusOK, out, err)
}

// GetByID proyecto con completitud; los usuarios de cliente solo ven los publicados propios.
func (h *ProyectoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(actor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar proyectos
// @Tags         proyectos
// @Security     Bearer
// @Produce      json
// @Param        estado   query  string  false  "borrador | publicado"
// @Param        cliente  query  string  false  "ID del cliente"
// @Success      200      {array}  dto.ProyectoResponse
// @Router       /api/admin/proyectos [get]
func (h *ProyectoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Query("estado"), c.Query("cliente"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListPublicados proyectos abiertos para el revisor.
func (h *ProyectoHandler) ListPublicados(c *fiber.Ctx) error {
	out, err := h.uc.List("publicado", "")
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
