package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/usecase"
)

// TrabajadorHandler cuentas y perfiles de trabajadores. Las rutas de administración reciben
// el id por path; las del portal usan el id de la sesión.
type TrabajadorHandler struct {
	uc *usecase.TrabajadorUseCase
}

// NewTrabajadorHandler construye el handler.
func NewTrabajadorHandler(uc *usecase.TrabajadorUseCase) *TrabajadorHandler {
	return &TrabajadorHandler{uc: uc}
}

// targetID id del path o, en el portal del trabajador, el de la sesión.
func targetID(c *fiber.Ctx) string {
	if id := c.Params("id"); id != "" {
		return id
	}
	return GetUserID(c)
}

// Registro godoc
// @Summary      Crear cuenta de trabajador
// @Tags         trabajador
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroRequest  true  "email y password"
// @Success      201   {object}  dto.RegistroResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/trabajador/registro [post]
func (h *TrabajadorHandler) Registro(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateAccount(c.UserContext(), in)
	return respond(c, fiber.StatusCreated, out, err)
}

// Portal godoc
// @Summary      Perfil y estado documental del trabajador de la sesión
// @Tags         trabajador
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.PortalResponse
// @Router       /api/trabajador/me [get]
func (h *TrabajadorHandler) Portal(c *fiber.Ctx) error {
	out, err := h.uc.Portal(GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar trabajadores
// @Tags         trabajadores
// @Security     Bearer
// @Produce      json
// @Param        q        query  string  false  "Búsqueda por nombre, RUT o especialidad"
// @Param        estado   query  string  false  "Estado documental"
// @Param        revisor  query  string  false  "Revisor asignado"
// @Param        proyecto query  string  false  "Proyecto asignado"
// @Param        limit    query  int     false  "Límite"  default(50)
// @Param        offset   query  int     false  "Offset"  default(0)
// @Success      200      {object}  dto.TrabajadorListResponse
// @Router       /api/admin/trabajadores [get]
func (h *TrabajadorHandler) List(c *fiber.Ctx) error {
	var f dto.TrabajadorFilter
	if err := c.QueryParser(&f); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener trabajador
// @Tags         trabajadores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del trabajador"
// @Success      200  {object}  dto.TrabajadorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/trabajadores/{id} [get]
func (h *TrabajadorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdatePerfil godoc
// @Summary      Completar o editar el perfil
// @Tags         trabajadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PerfilRequest  true  "Datos personales"
// @Success      200   {object}  dto.TrabajadorResponse
// @Router       /api/trabajador/perfil [put]
func (h *TrabajadorHandler) UpdatePerfil(c *fiber.Ctx) error {
	var in dto.PerfilRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CompleteProfile(c.UserContext(), targetID(c), in)
	return respond(c, fiber.StatusOK, out, err)
}

// UpdateCredencial cambia email o contraseña del trabajador.
func (h *TrabajadorHandler) UpdateCredencial(c *fiber.Ctx) error {
	var in dto.CredencialRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	err := h.uc.UpdateCredential(c.UserContext(), targetID(c), in)
	return respond(c, fiber.StatusNoContent, nil, err)
}

// AttachDocumento godoc
// @Summary      Adjuntar documento
// @Tags         trabajadores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DocumentoRequest  true  "tipo (cv, cedula, antecedentes, certificado) y contenido"
// @Success      200   {object}  dto.TrabajadorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/trabajador/documentos [post]
func (h *TrabajadorHandler) AttachDocumento(c *fiber.Ctx) error {
	var in dto.DocumentoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AttachDocument(c.UserContext(), targetID(c), in)
	return respond(c, fiber.StatusOK, out, err)
}

// GetDocumento contenido de un documento adjunto.
func (h *TrabajadorHandler) GetDocumento(c *fiber.Ctx) error {
	out, err := h.uc.GetDocument(targetID(c), c.Params("tipo"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete elimina el perfil y su credencial.
func (h *TrabajadorHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.DeleteAccount(c.UserContext(), targetID(c))
	return respond(c, fiber.StatusNoContent, nil, err)
}
