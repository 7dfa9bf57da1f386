package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Reclutamiento-api/internal/application/analytics"
	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
)

// DashboardHandler tableros de cada rol.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Admin godoc
// @Summary      Tablero del administrador
// @Description  KPIs de ocupación e histogramas (top 10 + Otros) sobre los trabajadores registrados en el rango, más el estado de los proyectos publicados.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Param        rango  query  string  false  "this_week | last_week | last_4_weeks | all"
// @Success      200    {object}  dto.AdminDashboardResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) Admin(c *fiber.Ctx) error {
	out, err := h.uc.Admin(c.Query("rango"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Revisor contadores del panel del revisor de la sesión.
// GET /api/revisor/dashboard
func (h *DashboardHandler) Revisor(c *fiber.Ctx) error {
	out, err := h.uc.Revisor(GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Usuario proyectos publicados del cliente de la sesión.
// GET /api/usuario/dashboard
func (h *DashboardHandler) Usuario(c *fiber.Ctx) error {
	clienteID := GetClienteID(c)
	if clienteID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "cliente_id no encontrado en el token",
		})
	}
	out, err := h.uc.Usuario(clienteID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
