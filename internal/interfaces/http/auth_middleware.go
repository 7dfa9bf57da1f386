package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Reclutamiento-api/internal/application/auth"
	"github.com/jhoicas/Reclutamiento-api/internal/application/dto"
	"github.com/jhoicas/Reclutamiento-api/internal/domain/entity"
	"github.com/jhoicas/Reclutamiento-api/pkg/jwt"
)

// Locals keys para los claims de la sesión en Fiber.
const (
	LocalUserID    = "user_id"
	LocalClienteID = "cliente_id"
	LocalRole      = "role"
)

// bearerClaims extrae y valida el Bearer Token. code vacío significa éxito.
func bearerClaims(c *fiber.Ctx, jwtSecret string) (*jwt.Claims, string, string) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, "MISSING_TOKEN", "Authorization header requerido"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, "INVALID_TOKEN", "formato: Bearer <token>"
	}
	tokenString := strings.TrimSpace(parts[1])
	if tokenString == "" {
		return nil, "MISSING_TOKEN", "token vacío"
	}
	claims, err := jwt.Parse(jwtSecret, tokenString)
	if err != nil {
		return nil, "INVALID_TOKEN", "token inválido o expirado"
	}
	return claims, "", ""
}

func setClaims(c *fiber.Ctx, claims *jwt.Claims) {
	c.Locals(LocalUserID, claims.UserID)
	c.Locals(LocalClienteID, claims.ClienteID)
	c.Locals(LocalRole, claims.Role)
}

// AuthMiddleware valida el Bearer Token JWT y deja user_id, cliente_id y role en c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, code, msg := bearerClaims(c, jwtSecret)
		if code != "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: code, Message: msg})
		}
		setClaims(c, claims)
		return c.Next()
	}
}

// OptionalAuth carga los claims si hay un token válido; sin token la petición sigue como anónima.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if claims, code, _ := bearerClaims(c, jwtSecret); code == "" {
			setClaims(c, claims)
		}
		return c.Next()
	}
}

// RequireRole permite el paso solo si el rol del token es uno de los indicados.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireRole(roles ...entity.Rol) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "rol sin acceso a este recurso"})
	}
}

func localString(c *fiber.Ctx, key string) string {
	s, _ := c.Locals(key).(string)
	return s
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string { return localString(c, LocalUserID) }

// GetClienteID devuelve el cliente del usuario; vacío para los demás roles.
func GetClienteID(c *fiber.Ctx) string { return localString(c, LocalClienteID) }

// GetRole devuelve el rol del token.
func GetRole(c *fiber.Ctx) entity.Rol { return entity.Rol(localString(c, LocalRole)) }

// actor identidad de la sesión para los casos de uso con control de acceso por proyecto.
func actor(c *fiber.Ctx) auth.Actor {
	return auth.Actor{ID: GetUserID(c), Role: GetRole(c), ClienteID: GetClienteID(c)}
}
