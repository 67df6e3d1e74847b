package handlers

import (
	"strconv"

	"maestro/internal/app"
	"maestro/internal/handlers/middleware"
	"maestro/internal/services"
	"maestro/internal/types"

	catalogController "maestro/internal/controllers/catalog"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
)

type CatalogHandler struct {
	Handler
	oidcService *services.OIDCService
	controller  catalogController.CatalogControllerInterface
}

type upsertArtistsRequest struct {
	ArtistIDs []string `json:"artistIds"`
}

type upsertComposerRequest struct {
	SpotifyArtistID string `json:"spotifyArtistId"`
	Name            string `json:"name"`
}

func NewCatalogHandler(app app.App, router fiber.Router) *CatalogHandler {
	return &CatalogHandler{
		oidcService: app.OIDCService,
		controller:  app.Controllers.Catalog,
		Handler: Handler{
			log:        logger.New("catalogHandler"),
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *CatalogHandler) Register() {
	gate := []fiber.Handler{
		h.middleware.RequireAuth(h.oidcService),
		h.middleware.RequireOperator(),
	}

	albums := h.router.Group("/albums", gate...)
	albums.Post("/", h.upsertAlbum)

	artists := h.router.Group("/artists", gate...)
	artists.Post("/", h.upsertArtists)

	composers := h.router.Group("/composers", gate...)
	composers.Post("/", h.upsertComposer)

	works := h.router.Group("/works", gate...)
	works.Get("/check", h.checkWorkAndMovement)

	tracks := h.router.Group("/tracks", gate...)
	tracks.Post("/", h.upsertTrack)
	tracks.Post("/link", h.linkTrack)
	tracks.Delete("/:id/link", h.unlinkTrack)
}

func (h *CatalogHandler) upsertAlbum(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("upsertAlbum")

	var input catalogController.AlbumInput
	if err := c.BodyParser(&input); err != nil {
		log.Info("failed to parse request body", "error", err.Error())
		return respondError(c, types.ErrInvalidInput)
	}

	album, err := h.controller.UpsertAlbum(c.UserContext(), middleware.GetUser(c), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"album": album})
}

func (h *CatalogHandler) upsertArtists(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("upsertArtists")

	var req upsertArtistsRequest
	if err := c.BodyParser(&req); err != nil {
		log.Info("failed to parse request body", "error", err.Error())
		return respondError(c, types.ErrInvalidInput)
	}

	artists, err := h.controller.UpsertArtists(c.UserContext(), middleware.GetUser(c), req.ArtistIDs)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"artists": artists})
}

func (h *CatalogHandler) upsertTrack(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("upsertTrack")

	var input catalogController.TrackInput
	if err := c.BodyParser(&input); err != nil {
		log.Info("failed to parse request body", "error", err.Error())
		return respondError(c, types.ErrInvalidInput)
	}

	track, err := h.controller.UpsertTrack(c.UserContext(), middleware.GetUser(c), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"track": track})
}

func (h *CatalogHandler) upsertComposer(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("upsertComposer")

	var req upsertComposerRequest
	if err := c.BodyParser(&req); err != nil {
		log.Info("failed to parse request body", "error", err.Error())
		return respondError(c, types.ErrInvalidInput)
	}

	composer, err := h.controller.UpsertComposer(
		c.UserContext(),
		middleware.GetUser(c),
		req.SpotifyArtistID,
		req.Name,
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"composer": composer})
}

func (h *CatalogHandler) checkWorkAndMovement(c *fiber.Ctx) error {
	movementNumber, err := strconv.Atoi(c.Query("movementNumber", "0"))
	if err != nil {
		return respondError(c, types.ErrInvalidInput)
	}

	query := catalogController.WorkMovementQuery{
		ComposerID:     c.Query("composerId"),
		CatalogSystem:  c.Query("catalogSystem"),
		CatalogNumber:  c.Query("catalogNumber"),
		MovementNumber: movementNumber,
	}

	status, err := h.controller.CheckWorkAndMovement(c.UserContext(), middleware.GetUser(c), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(status)
}

func (h *CatalogHandler) linkTrack(c *fiber.Ctx) error {
	log := h.log.TraceFromContext(c.UserContext()).Function("linkTrack")

	var input catalogController.LinkInput
	if err := c.BodyParser(&input); err != nil {
		log.Info("failed to parse request body", "error", err.Error())
		return respondError(c, types.ErrInvalidInput)
	}

	link, err := h.controller.LinkWorkMovementTrack(c.UserContext(), middleware.GetUser(c), input)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"link": link})
}

func (h *CatalogHandler) unlinkTrack(c *fiber.Ctx) error {
	deleted, err := h.controller.UnlinkTrack(
		c.UserContext(),
		middleware.GetUser(c),
		c.Params("id"),
	)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"deleted": deleted})
}
