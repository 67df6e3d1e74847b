package handlers

import (
	"time"

	"maestro/internal/app"
	"maestro/internal/handlers/middleware"
	"maestro/internal/services"
	"maestro/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Handler
	oidcService *services.OIDCService
	tokenBroker *services.TokenBrokerService
}

type spotifyTokenRequest struct {
	AccessToken string     `json:"accessToken"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

func NewUserHandler(app app.App, router fiber.Router) *UserHandler {
	return &UserHandler{
		oidcService: app.OIDCService,
		tokenBroker: app.TokenBrokerService,
		Handler: Handler{
			log:        logger.New("userHandler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *UserHandler) Register() {
	users := h.router.Group("/users")

	protected := users.Group("/", h.middleware.RequireAuth(h.oidcService))
	protected.Get("/me", h.getCurrentUser)
	protected.Put("/me/spotify-token", h.putSpotifyToken)
}

// getCurrentUser returns information about the currently authenticated user
func (h *UserHandler) getCurrentUser(c *fiber.Ctx) error {
	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	return c.JSON(fiber.Map{
		"user": user.ToProfile(),
	})
}

// putSpotifyToken deposits the caller's Spotify access token with the broker.
// The client owns the OAuth dance; the server only stores the result.
func (h *UserHandler) putSpotifyToken(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("putSpotifyToken")

	user := middleware.GetUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req spotifyTokenRequest
	if err := c.BodyParser(&req); err != nil {
		log.Info("failed to parse request body", "error", err.Error())
		return respondError(c, types.ErrInvalidInput)
	}

	if err := h.tokenBroker.StoreAccessToken(
		c.UserContext(),
		services.SpotifyProvider,
		user,
		req.AccessToken,
		req.ExpiresAt,
	); err != nil {
		return respondError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
