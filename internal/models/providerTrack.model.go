package models

// ProviderTrack mirrors a Spotify track record. Rows are written only when the
// operator explicitly saves a track; they are never mutated outside an upsert.
type ProviderTrack struct {
	BaseProviderModel
	Name        string `gorm:"type:text" json:"name"`
	URI         string `gorm:"type:text" json:"uri"`
	DurationMS  int    `gorm:"type:int"  json:"durationMs"`
	DiscNumber  int    `gorm:"type:int"  json:"discNumber"`
	TrackNumber int    `gorm:"type:int"  json:"trackNumber"`
	Popularity  int    `gorm:"type:int"  json:"popularity"`
	AlbumID     string `gorm:"type:text;index" json:"albumId"`

	Album   *ProviderAlbum   `gorm:"foreignKey:AlbumID"                  json:"album,omitempty"`
	Artists []ProviderArtist `gorm:"many2many:provider_track_artists;"   json:"artists,omitempty"`
}

// TrackArtist is the explicit join row between a mirrored track and artist.
// Inserts ignore conflicts so re-saving a track is a no-op.
type TrackArtist struct {
	TrackID  string `gorm:"type:text;primaryKey" json:"trackId"`
	ArtistID string `gorm:"type:text;primaryKey" json:"artistId"`
}

func (TrackArtist) TableName() string {
	return "provider_track_artists"
}
