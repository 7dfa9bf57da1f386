package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Reclutamiento-api/internal/application/analytics"
)

// AnalyticsHandler kanban de proyectos, listados del revisor y reporte PDF.
type AnalyticsHandler struct {
	board  *appanalytics.BoardUseCase
	report *appanalytics.ReportUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(board *appanalytics.BoardUseCase, report *appanalytics.ReportUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{board: board, report: report}
}

// Board godoc
// @Summary      Kanban del proyecto
// @Description  Columnas Ingreso, Entrevista, Evaluación, Aprobado para Contratar y Carpeta Solicitada, con historial de rechazados y panel de completitud.
// @Tags         analytics
// @Security     Bearer
// @Produce      json
// @Param        id  path   string  true   "ID del proyecto"
// @Param        q   query  string  false  "Búsqueda por nombre, RUT o especialidad"
// @Success      200  {object}  dto.BoardResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuario/proyectos/{id}/tablero [get]
func (h *AnalyticsHandler) Board(c *fiber.Ctx) error {
	out, err := h.board.Board(actor(c), c.Params("id"), c.Query("q"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ColaValidacion en revisión documental; ?mios=true filtra los asignados al revisor.
func (h *AnalyticsHandler) ColaValidacion(c *fiber.Ctx) error {
	revisorID := ""
	if c.QueryBool("mios") {
		revisorID = GetUserID(c)
	}
	return c.JSON(h.board.ValidationQueue(revisorID, c.Query("q")))
}

func (h *AnalyticsHandler) RechazosDocumentales(c *fiber.Ctx) error {
	return c.JSON(h.board.DocumentalRejections(c.Query("q")))
}

func (h *AnalyticsHandler) PoolLibre(c *fiber.Ctx) error {
	return c.JSON(h.board.FreePool(c.Query("q")))
}

// Rechazados consolidado de rechazos documentales y del cliente.
func (h *AnalyticsHandler) Rechazados(c *fiber.Ctx) error {
	return c.JSON(h.board.Rejected(c.Query("q")))
}

// Reporte godoc
// @Summary      Reporte PDF de contratación del proyecto
// @Tags         analytics
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del proyecto"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/usuario/proyectos/{id}/reporte [get]
func (h *AnalyticsHandler) Reporte(c *fiber.Ctx) error {
	pdf, name, err := h.report.ProjectReportPDF(c.UserContext(), actor(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Attachment(name)
	return c.Send(pdf)
}
