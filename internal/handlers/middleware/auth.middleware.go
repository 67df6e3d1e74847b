package middleware

import (
	"context"
	"strings"
	"time"

	"maestro/internal/models"
	"maestro/internal/services"

	logger "github.com/Bparsons0904/goLogger"

	"github.com/gofiber/fiber/v2"
)

// AuthContextKey is used to store auth info in context
type AuthContextKey string

const (
	UserKey      AuthContextKey = "user"
	UserKeyFiber string         = "User" // Fiber context key (string)
)

// RequireAuth validates the bearer ID token and resolves (creating on first
// login) the matching user record.
func (m *Middleware) RequireAuth(oidcService *services.OIDCService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := logger.New("middleware").TraceFromContext(c.UserContext()).Function("RequireAuth")

		authHeader := c.Get("Authorization")
		if authHeader == "" {
			log.Info("missing authorization header")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header required",
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || strings.ToLower(tokenParts[0]) != "bearer" {
			log.Info("invalid authorization header format")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid authorization header format",
			})
		}

		token := tokenParts[1]
		if token == "" {
			log.Info("empty token")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token required",
			})
		}

		tokenInfo, err := oidcService.ValidateIDToken(c.UserContext(), token)
		if err != nil {
			log.Info("token validation failed", "error", err.Error())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid token",
			})
		}

		// Cached lookup first; first login falls through to creation.
		user, err := m.userRepo.GetByOIDCUserID(c.UserContext(), tokenInfo.UserID)
		if err != nil {
			user, err = m.userRepo.FindOrCreateOIDCUser(c.UserContext(), &models.User{
				OIDCUserID:  tokenInfo.UserID,
				DisplayName: tokenInfo.Name,
				Email:       &tokenInfo.Email,
				IsActive:    true,
			})
			if err == nil {
				now := time.Now()
				user.LastLoginAt = &now
				if updateErr := m.userRepo.Update(c.UserContext(), user); updateErr != nil {
					log.Warn("failed to record login time", "userID", user.ID, "error", updateErr.Error())
				}
			}
		}
		if err != nil {
			log.Info("user resolution failed", "oidcUserID", tokenInfo.UserID, "error", err.Error())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "User not found",
			})
		}

		// Store user in Fiber context
		c.Locals(UserKeyFiber, user)

		// Add to Go context for controllers (preserve trace ID from TraceID middleware)
		ctx := context.WithValue(c.UserContext(), UserKey, user)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// GetUser extracts user from Fiber context
func GetUser(c *fiber.Ctx) *models.User {
	user, ok := c.Locals(UserKeyFiber).(*models.User)
	if !ok {
		return nil
	}
	return user
}
