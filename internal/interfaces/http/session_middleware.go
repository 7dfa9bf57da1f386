package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
)

// sessionChecker contrato mínimo para verificar que la cuenta del token sigue existiendo.
// Lo implementa *auth.AuthUseCase.
type sessionChecker interface {
	Session(userID string, role entity.Rol) *auth.CurrentUser
}

// RequireSession rechaza tokens válidos cuya cuenta fue eliminada (revisor borrado, cuenta de
// trabajador dada de baja). Debe usarse DESPUÉS de AuthMiddleware.
func RequireSession(checker sessionChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if checker.Session(GetUserID(c), GetRole(c)) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "SESSION_GONE",
				Message: "la cuenta de la sesión ya no existe",
			})
		}
		return c.Next()
	}
}
