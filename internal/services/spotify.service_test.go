package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"maestro/config"
	"maestro/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpotifyService(handler http.Handler) (*SpotifyService, *httptest.Server) {
	server := httptest.NewServer(handler)
	service := NewSpotifyService(config.Config{SpotifyAPIURL: server.URL})
	return service, server
}

func TestGetTrack(t *testing.T) {
	service, server := newTestSpotifyService(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/tracks/6rqhFgbbKwnb9MLmUQDhG6", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "6rqhFgbbKwnb9MLmUQDhG6",
				"name": "Symphony No. 5 in C Minor, Op. 67: I. Allegro con brio",
				"uri": "spotify:track:6rqhFgbbKwnb9MLmUQDhG6",
				"duration_ms": 445000,
				"disc_number": 1,
				"track_number": 1,
				"popularity": 62,
				"album": {
					"id": "album1",
					"name": "Beethoven: Symphonies 5 & 7",
					"release_date": "1977-11-04",
					"images": [{"url": "https://img/1", "height": 640, "width": 640}]
				},
				"artists": [{"id": "artist1", "name": "Ludwig van Beethoven"}]
			}`))
		}),
	)
	defer server.Close()

	track, err := service.GetTrack(context.Background(), "test-token", "6rqhFgbbKwnb9MLmUQDhG6")
	require.NoError(t, err)

	assert.Equal(t, "6rqhFgbbKwnb9MLmUQDhG6", track.ID)
	assert.Equal(t, 445000, track.DurationMS)
	assert.Equal(t, 1, track.TrackNumber)
	assert.Equal(t, "album1", track.Album.ID)
	assert.Equal(t, "1977-11-04", track.Album.ReleaseDate)
	require.Len(t, track.Artists, 1)
	assert.Equal(t, "artist1", track.Artists[0].ID)
}

func TestGetTrackProviderErrorPassthrough(t *testing.T) {
	service, server := newTestSpotifyService(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": {"status": 404, "message": "non existing id"}}`))
		}),
	)
	defer server.Close()

	_, err := service.GetTrack(context.Background(), "test-token", "missing")
	require.Error(t, err)

	var providerErr *types.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusNotFound, providerErr.Status)
	assert.Equal(t, "non existing id", providerErr.Message)
}

func TestGetTrackRateLimitPassthrough(t *testing.T) {
	service, server := newTestSpotifyService(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"error": {"status": 429, "message": "rate limited"}}`))
		}),
	)
	defer server.Close()

	_, err := service.GetTrack(context.Background(), "test-token", "anything")

	var providerErr *types.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusTooManyRequests, providerErr.Status)
}

func TestGetTrackNoToken(t *testing.T) {
	requestCount := 0
	service, server := newTestSpotifyService(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCount++
		}),
	)
	defer server.Close()

	_, err := service.GetTrack(context.Background(), "", "6rqhFgbbKwnb9MLmUQDhG6")

	assert.ErrorIs(t, err, types.ErrNoAccessToken)
	assert.Zero(t, requestCount, "no request should leave the process without a token")
}

func TestGetTrackMalformedResponse(t *testing.T) {
	service, server := newTestSpotifyService(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"id": `))
		}),
	)
	defer server.Close()

	_, err := service.GetTrack(context.Background(), "test-token", "6rqhFgbbKwnb9MLmUQDhG6")

	var providerErr *types.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "malformed provider response", providerErr.Message)
}

func TestGetSeveralArtists(t *testing.T) {
	service, server := newTestSpotifyService(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/artists", r.URL.Path)
			assert.Equal(t, "artist1,artist2", r.URL.Query().Get("ids"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"artists": [
				{"id": "artist1", "name": "Ludwig van Beethoven", "popularity": 78},
				{"id": "artist2", "name": "Berliner Philharmoniker", "popularity": 71}
			]}`))
		}),
	)
	defer server.Close()

	artists, err := service.GetSeveralArtists(
		context.Background(),
		"test-token",
		[]string{"artist1", "artist2"},
	)
	require.NoError(t, err)

	require.Len(t, artists, 2)
	assert.Equal(t, "Ludwig van Beethoven", artists[0].Name)
	assert.Equal(t, 71, artists[1].Popularity)
}

func TestGetSeveralArtistsEmptyInput(t *testing.T) {
	requestCount := 0
	service, server := newTestSpotifyService(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestCount++
		}),
	)
	defer server.Close()

	artists, err := service.GetSeveralArtists(context.Background(), "test-token", nil)

	require.NoError(t, err)
	assert.Empty(t, artists)
	assert.Zero(t, requestCount)
}
