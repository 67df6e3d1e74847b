package models

import "gorm.io/datatypes"

type ProviderAlbum struct {
	BaseProviderModel
	Title       string         `gorm:"type:text"  json:"title"`
	ReleaseDate string         `gorm:"type:text"  json:"releaseDate"`
	ReleaseYear *int           `gorm:"type:int"   json:"releaseYear,omitempty"`
	Popularity  int            `gorm:"type:int"   json:"popularity"`
	Images      datatypes.JSON `gorm:"type:jsonb" json:"images,omitempty"`

	Tracks []ProviderTrack `gorm:"foreignKey:AlbumID" json:"tracks,omitempty"`
}

// ImageVariant is the serialized shape stored in the Images JSON column.
type ImageVariant struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}
