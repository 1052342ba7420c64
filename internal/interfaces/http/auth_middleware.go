package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodegas-api/internal/application/dto"
	"github.com/jhoicas/bodegas-api/internal/domain"
	"github.com/jhoicas/bodegas-api/pkg/jwt"
)

// LocalActorID key en c.Locals del usuario autenticado.
const LocalActorID = "actor_id"

// ActorMiddleware resuelve el usuario autenticado a partir de un Bearer Token opcional.
// Sin header Authorization la petición sigue como anónima (created_by del body o actor por defecto).
// Un header presente pero inválido responde 401.
func ActorMiddleware(jwtSecret, issuer string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Next()
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c, "formato: Bearer <token>")
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return unauthorized(c, "token vacío")
		}
		userID, err := jwt.Parse(jwtSecret, issuer, tokenString)
		if err != nil {
			return unauthorized(c, "token inválido o expirado")
		}
		c.Locals(LocalActorID, userID)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, detail string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.Fail(domain.ErrUnauthorized.Error()+": "+detail, nil))
}

// GetActorID devuelve el usuario autenticado (después de ActorMiddleware).
func GetActorID(c *fiber.Ctx) (int64, bool) {
	id, ok := c.Locals(LocalActorID).(int64)
	return id, ok && id > 0
}
