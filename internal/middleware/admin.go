package middleware

import (
	"log/slog"

	"github.com/berkekarsli/taskbox-backend/internal/auth"
	"github.com/berkekarsli/taskbox-backend/internal/dto"
	"github.com/berkekarsli/taskbox-backend/internal/models"
	"github.com/gofiber/fiber/v2"
)

// AdminRequired gates admin-only routes. The role is read exclusively
// from the verified claim set stored by JWTProtected; nothing in the
// request body or headers can substitute for it.
func AdminRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := auth.FromContext(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if claims.Role != models.RoleAdmin {
			slog.Warn("unauthorized admin access attempt",
				"user_id", claims.ID.String(),
				"email", claims.Email,
				"path", c.Path(),
			)
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Admin access required",
			})
		}

		return c.Next()
	}
}
