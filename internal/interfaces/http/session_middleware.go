package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/cafeteria-panel/internal/application/dto"
	"github.com/tu-usuario/cafeteria-panel/internal/infrastructure/remote"
	"github.com/tu-usuario/cafeteria-panel/pkg/token"
)

// SessionMiddleware extrae el Bearer Token de la sesión y lo propaga en el
// UserContext para que los gateways remotos lo reenvíen al backend. El panel
// no valida la firma (eso es trabajo del backend); solo rechaza de entrada
// los tokens con expiración ya vencida para ahorrar el viaje.
func SessionMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		if token.Expired(tokenString, time.Now()) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: "la sesión expiró, inicia sesión de nuevo"})
		}
		c.SetUserContext(remote.WithToken(c.UserContext(), tokenString))
		return c.Next()
	}
}
