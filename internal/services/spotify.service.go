package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"maestro/config"
	"maestro/internal/types"

	logger "github.com/Bparsons0904/goLogger"
)

// SpotifyService is the outbound client for the metadata provider. All calls
// are read-only and authenticated with the caller's bearer token.
type SpotifyService struct {
	client  *http.Client
	baseURL string
	log     logger.Logger
}

type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

type SpotifyTrack struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	URI         string          `json:"uri"`
	DurationMS  int             `json:"duration_ms"`
	DiscNumber  int             `json:"disc_number"`
	TrackNumber int             `json:"track_number"`
	Popularity  int             `json:"popularity"`
	Album       SpotifyAlbum    `json:"album"`
	Artists     []SpotifyArtist `json:"artists"`
}

type SpotifyAlbum struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	ReleaseDate string         `json:"release_date"`
	Popularity  int            `json:"popularity"`
	Images      []SpotifyImage `json:"images"`
	URI         string         `json:"uri"`
}

type SpotifyArtist struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Popularity int            `json:"popularity"`
	Images     []SpotifyImage `json:"images"`
	URI        string         `json:"uri"`
}

type spotifyErrorBody struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

func NewSpotifyService(cfg config.Config) *SpotifyService {
	return &SpotifyService{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: cfg.SpotifyAPIURL,
		log:     logger.New("SpotifyService"),
	}
}

func (s *SpotifyService) GetTrack(ctx context.Context, token, trackID string) (*SpotifyTrack, error) {
	var track SpotifyTrack
	endpoint := fmt.Sprintf("/tracks/%s", url.PathEscape(trackID))
	if err := s.doRequest(ctx, token, endpoint, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

func (s *SpotifyService) GetArtist(ctx context.Context, token, artistID string) (*SpotifyArtist, error) {
	var artist SpotifyArtist
	endpoint := fmt.Sprintf("/artists/%s", url.PathEscape(artistID))
	if err := s.doRequest(ctx, token, endpoint, &artist); err != nil {
		return nil, err
	}
	return &artist, nil
}

// GetSeveralArtists resolves full artist records; the artist objects embedded
// in a track response carry no popularity or images.
func (s *SpotifyService) GetSeveralArtists(
	ctx context.Context,
	token string,
	artistIDs []string,
) ([]SpotifyArtist, error) {
	if len(artistIDs) == 0 {
		return []SpotifyArtist{}, nil
	}

	endpoint := "/artists?ids=" + url.QueryEscape(strings.Join(artistIDs, ","))

	var response struct {
		Artists []SpotifyArtist `json:"artists"`
	}
	if err := s.doRequest(ctx, token, endpoint, &response); err != nil {
		return nil, err
	}

	return response.Artists, nil
}

func (s *SpotifyService) doRequest(ctx context.Context, token, endpoint string, result any) error {
	log := s.log.Function("doRequest")

	if token == "" {
		return types.ErrNoAccessToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint, nil)
	if err != nil {
		return log.Err("failed to create request", err, "endpoint", endpoint)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return log.Err("failed to make request", err, "endpoint", endpoint)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Warn("Failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		providerErr := &types.ProviderError{Status: resp.StatusCode}

		var body spotifyErrorBody
		if decodeErr := json.NewDecoder(resp.Body).Decode(&body); decodeErr == nil {
			providerErr.Message = body.Error.Message
		}

		log.Warn("Spotify API error",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"message", providerErr.Message,
		)
		return providerErr
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		// A malformed success body is still a provider-side failure.
		s.log.Er("failed to decode provider response", err, "endpoint", endpoint)
		return &types.ProviderError{Status: resp.StatusCode, Message: "malformed provider response"}
	}

	return nil
}
