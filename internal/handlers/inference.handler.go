package handlers

import (
	"maestro/internal/app"
	"maestro/internal/services"
	"maestro/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type InferenceHandler struct {
	Handler
	oidcService *services.OIDCService
	inference   *services.InferenceService
}

type inferenceRequest struct {
	Entries []types.InferenceEntry `json:"entries"`
}

type movementNumbersRequest struct {
	Tracks []services.MovementGroupEntry `json:"tracks"`
}

func NewInferenceHandler(app app.App, router fiber.Router) *InferenceHandler {
	return &InferenceHandler{
		oidcService: app.OIDCService,
		inference:   app.InferenceService,
		Handler: Handler{
			log:        logger.New("inferenceHandler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *InferenceHandler) Register() {
	inference := h.router.Group(
		"/inference",
		h.middleware.RequireAuth(h.oidcService),
		h.middleware.RequireOperator(),
	)
	inference.Post("/", h.inferMetadata)
	inference.Post("/movement-numbers", h.inferMovementNumbers)
}

// inferMetadata runs the title parser over a batch of track names. Results
// are positional: entry i of the response belongs to track i of the request,
// with null for titles the parser could make nothing of.
func (h *InferenceHandler) inferMetadata(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("inferMetadata")

	var req inferenceRequest
	if err := c.BodyParser(&req); err != nil {
		log.Info("failed to parse request body", "error", err.Error())
		return respondError(c, types.ErrInvalidInput)
	}

	if len(req.Entries) == 0 {
		return respondError(c, types.ErrInvalidInput)
	}

	return c.JSON(fiber.Map{
		"results": h.inference.InferBatch(req.Entries),
	})
}

// inferMovementNumbers assigns movement numbers by track position within each
// (album, composer, catalog) group.
func (h *InferenceHandler) inferMovementNumbers(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("inferMovementNumbers")

	var req movementNumbersRequest
	if err := c.BodyParser(&req); err != nil {
		log.Info("failed to parse request body", "error", err.Error())
		return respondError(c, types.ErrInvalidInput)
	}

	if len(req.Tracks) == 0 {
		return respondError(c, types.ErrInvalidInput)
	}

	return c.JSON(fiber.Map{
		"movementNumbers": services.InferMovementNumbers(req.Tracks),
	})
}
