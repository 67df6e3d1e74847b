package handlers

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"maestro/internal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusFor(t *testing.T, err error) (int, string) {
	t.Helper()

	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return respondError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, reqErr)
	defer func() { _ = resp.Body.Close() }()

	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	return resp.StatusCode, string(body)
}

func TestRespondErrorTaxonomy(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "invalid input", err: types.ErrInvalidInput, expected: http.StatusBadRequest},
		{name: "unauthorized", err: types.ErrUnauthorized, expected: http.StatusUnauthorized},
		{name: "no access token", err: types.ErrNoAccessToken, expected: http.StatusUnauthorized},
		{name: "access denied", err: types.ErrAccessDenied, expected: http.StatusForbidden},
		{name: "unknown error", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := statusFor(t, tc.err)
			assert.Equal(t, tc.expected, status)
		})
	}
}

func TestRespondErrorProviderPassthrough(t *testing.T) {
	status, body := statusFor(t, &types.ProviderError{
		Status:  http.StatusNotFound,
		Message: "non existing id",
	})

	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "non existing id")
}

func TestRespondErrorWriteFailed(t *testing.T) {
	status, body := statusFor(t, types.NewWriteFailed("upsertAlbum", errors.New("pq: gone")))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "upsertAlbum")
	assert.NotContains(t, body, "pq: gone", "the underlying cause stays server-side")
}

func TestRespondErrorWriteFailedProviderCause(t *testing.T) {
	status, body := statusFor(t, types.NewWriteFailed("upsertArtists", &types.ProviderError{
		Status:  http.StatusNotFound,
		Message: "non existing id",
	}))

	assert.Equal(t, http.StatusInternalServerError, status,
		"a write failure stays generic even when the cause carries a provider status")
	assert.Contains(t, body, "upsertArtists")
	assert.NotContains(t, body, "non existing id")
}

func TestRespondErrorWrappedSentinel(t *testing.T) {
	status, _ := statusFor(t, errors.Join(errors.New("context"), types.ErrInvalidInput))
	assert.Equal(t, http.StatusBadRequest, status)
}
