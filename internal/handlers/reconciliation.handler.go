package handlers

import (
	"maestro/internal/app"
	"maestro/internal/handlers/middleware"
	"maestro/internal/services"
	"maestro/internal/types"

	reconciliationController "maestro/internal/controllers/reconciliation"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type ReconciliationHandler struct {
	Handler
	oidcService *services.OIDCService
	controller  reconciliationController.ReconciliationControllerInterface
}

// resolveTracksRequest accepts either a single reference or a batch; exactly
// one of the two fields should be set.
type resolveTracksRequest struct {
	TrackURI  string   `json:"trackUri,omitempty"`
	TrackURIs []string `json:"trackUris,omitempty"`
}

func NewReconciliationHandler(app app.App, router fiber.Router) *ReconciliationHandler {
	return &ReconciliationHandler{
		oidcService: app.OIDCService,
		controller:  app.Controllers.Reconciliation,
		Handler: Handler{
			log:        logger.New("reconciliationHandler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ReconciliationHandler) Register() {
	tracks := h.router.Group(
		"/tracks",
		h.middleware.RequireAuth(h.oidcService),
		h.middleware.RequireOperator(),
	)
	tracks.Post("/resolve", h.resolveTracks)
}

func (h *ReconciliationHandler) resolveTracks(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("resolveTracks")

	var req resolveTracksRequest
	if err := c.BodyParser(&req); err != nil {
		log.Info("failed to parse request body", "error", err.Error())
		return respondError(c, types.ErrInvalidInput)
	}

	refs := req.TrackURIs
	if len(refs) == 0 && req.TrackURI != "" {
		refs = []string{req.TrackURI}
	}

	annotated, err := h.controller.ResolveTracks(c.UserContext(), middleware.GetUser(c), refs)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"tracks": annotated,
	})
}
