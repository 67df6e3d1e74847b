package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireOperator rejects any authenticated user whose display name does not
// match the configured operator. Controllers re-check this gate themselves;
// the middleware exists so unauthorized requests never reach a controller.
func (m *Middleware) RequireOperator() fiber.Handler {
	log := m.log.Function("RequireOperator")

	return func(c *fiber.Ctx) error {
		user := GetUser(c)
		if user == nil {
			log.Info("user not found in context")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authentication required",
			})
		}

		if user.DisplayName != m.Config.OperatorName {
			log.Info("user is not the operator", "userID", user.ID)
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Operator access required",
			})
		}

		return c.Next()
	}
}
