package types

import "maestro/internal/models"

// AnnotatedTrack combines the live Spotify record for one track with flags and
// rows describing what the catalog store already holds for it.
type AnnotatedTrack struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	URI         string           `json:"uri"`
	DurationMS  int              `json:"durationMs"`
	DiscNumber  int              `json:"discNumber"`
	TrackNumber int              `json:"trackNumber"`
	Popularity  int              `json:"popularity"`
	Album       AnnotatedAlbum   `json:"album"`
	Artists     []AnnotatedArtist `json:"artists"`

	InProviderTracksTable bool   `json:"inProviderTracksTable"`
	DBData                DBData `json:"dbData"`
}

type AnnotatedAlbum struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	ReleaseDate string                `json:"releaseDate"`
	Popularity  int                   `json:"popularity"`
	Images      []models.ImageVariant `json:"images,omitempty"`

	InProviderAlbumsTable bool `json:"inProviderAlbumsTable"`
}

type AnnotatedArtist struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	Popularity int                   `json:"popularity"`
	Images     []models.ImageVariant `json:"images,omitempty"`

	InProviderArtistsTable bool    `json:"inProviderArtistsTable"`
	InComposersTable       bool    `json:"inComposersTable"`
	ComposerID             *string `json:"composerId,omitempty"`
}

// DBData is the raw result of walking TrackMovement -> Movement -> Work ->
// Composer for a cached track. A missing intermediate truncates the chain to
// empty slices instead of erroring.
type DBData struct {
	TrackMovements []models.TrackMovement `json:"trackMovements"`
	Movements      []models.Movement      `json:"movements"`
	Works          []models.Work          `json:"works"`
	Composers      []models.Composer      `json:"composers"`
}
