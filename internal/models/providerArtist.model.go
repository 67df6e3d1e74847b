package models

import "gorm.io/datatypes"

type ProviderArtist struct {
	BaseProviderModel
	Name       string         `gorm:"type:text"  json:"name"`
	Popularity int            `gorm:"type:int"   json:"popularity"`
	Images     datatypes.JSON `gorm:"type:jsonb" json:"images,omitempty"`

	Tracks []ProviderTrack `gorm:"many2many:provider_track_artists;" json:"tracks,omitempty"`
}
