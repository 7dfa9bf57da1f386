package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// AuthHandler maneja login, sesión actual y guard de rutas.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión en el portal de un rol
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password, role"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if in.Email == "" || in.Password == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password y role son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Me godoc
// @Summary      Usuario de la sesión
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionUser
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(GetUserID(c), GetRole(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Guard godoc
// @Summary      Decisión del guard para la ruta de un rol
// @Tags         auth
// @Produce      json
// @Param        role  query  string  true  "Rol requerido por la ruta"
// @Success      200   {object}  auth.Decision
// @Router       /api/guard [get]
func (h *AuthHandler) Guard(c *fiber.Ctx) error {
	required := entity.Rol(c.Query("role"))
	if !required.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "role inválido"})
	}
	var user *auth.CurrentUser
	if id := GetUserID(c); id != "" {
		user = h.uc.Session(id, GetRole(c))
	}
	return c.JSON(auth.Guard(user, required))
}
