package handlers

import (
	"errors"

	"maestro/internal/types"

	"github.com/gofiber/fiber/v2"
)

// respondError translates the controller failure taxonomy into HTTP statuses.
// Provider statuses pass through unchanged; anything unrecognized is a 500.
// The WriteFailedError check must come first: a write failure stays the generic
// 500 even when the wrapped cause is a provider status.
func respondError(c *fiber.Ctx, err error) error {
	var writeErr *types.WriteFailedError
	if errors.As(err, &writeErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":     writeErr.Error(),
			"operation": writeErr.Operation,
		})
	}

	var providerErr *types.ProviderError
	if errors.As(err, &providerErr) {
		return c.Status(providerErr.Status).JSON(fiber.Map{
			"error": providerErr.Message,
		})
	}

	switch {
	case errors.Is(err, types.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, types.ErrUnauthorized), errors.Is(err, types.ErrNoAccessToken):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, types.ErrAccessDenied):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}
