package models

import "time"

// TrackMovement links one Spotify track to one catalog Movement. Its existence
// is the system's sole definition of "this track is catalogued". Start/end
// offsets are reserved for sub-track slicing and stay null for now.
// No soft delete here: unlink must remove the row outright so the same pair can
// be linked again later without tripping the unique index.
type TrackMovement struct {
	ID         int       `gorm:"type:int;primaryKey;autoIncrement"                               json:"id"`
	CreatedAt  time.Time `gorm:"autoCreateTime"                                                  json:"createdAt"`
	TrackID    string    `gorm:"type:text;index;uniqueIndex:idx_track_movements_track_movement" json:"trackId"`
	MovementID string    `gorm:"type:text;index;uniqueIndex:idx_track_movements_track_movement" json:"movementId"`
	StartMS    *int      `gorm:"type:int"                                                        json:"startMs,omitempty"`
	EndMS      *int      `gorm:"type:int"                                                        json:"endMs,omitempty"`

	Track    *ProviderTrack `gorm:"foreignKey:TrackID"    json:"track,omitempty"`
	Movement *Movement      `gorm:"foreignKey:MovementID" json:"movement,omitempty"`
}
