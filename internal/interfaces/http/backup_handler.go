package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/application/usecase"
)

// BackupHandler respaldo, restauración, logo de la plataforma e importación masiva.
type BackupHandler struct {
	backup *usecase.BackupUseCase
	imp    *usecase.ImportUseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(backup *usecase.BackupUseCase, imp *usecase.ImportUseCase) *BackupHandler {
	return &BackupHandler{backup: backup, imp: imp}
}

// Export godoc
// @Summary      Descargar respaldo completo en JSON
// @Tags         respaldo
// @Security     Bearer
// @Produce      json
// @Success      200  {file}  binary
// @Router       /api/admin/respaldo [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	data, name, err := h.backup.Export()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	c.Attachment(name)
	return c.Send(data)
}

// Restore godoc
// @Summary      Restaurar un respaldo (reemplaza todo el estado)
// @Tags         respaldo
// @Security     Bearer
// @Accept       json
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/respaldo [post]
func (h *BackupHandler) Restore(c *fiber.Ctx) error {
	err := h.backup.Restore(c.UserContext(), c.Body())
	return respond(c, fiber.StatusNoContent, nil, err)
}

// GetLogo logo de la plataforma (público; lo muestra la landing).
func (h *BackupHandler) GetLogo(c *fiber.Ctx) error {
	return c.JSON(dto.LogoRequest{Logo: h.backup.PlatformLogo()})
}

func (h *BackupHandler) SetLogo(c *fiber.Ctx) error {
	var in dto.LogoRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	err := h.backup.SetPlatformLogo(c.UserContext(), in.Logo)
	return respond(c, fiber.StatusNoContent, nil, err)
}

// Import godoc
// @Summary      Importación masiva de trabajadores
// @Description  Solo se importan los registros con cv, cédula y antecedentes; el resto se informa con los documentos faltantes.
// @Tags         respaldo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ImportRequest  true  "Registros"
// @Success      200   {object}  dto.ImportResponse
// @Router       /api/admin/importacion [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	var in dto.ImportRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.imp.Import(c.UserContext(), in)
	return respond(c, fiber.StatusOK, out, err)
}
