package models

// Composer is keyed by a slug derived once from the display name and never
// regenerated afterwards. Re-deriving it from a renamed composer would orphan
// every Work hanging off the old slug.
type Composer struct {
	ID   string `gorm:"type:text;primaryKey" json:"id"`
	Name string `gorm:"type:text"            json:"name"`

	// One-to-one back-reference to the Spotify artist this composer corresponds to.
	ProviderArtistID string `gorm:"type:text;uniqueIndex" json:"providerArtistId"`

	ProviderArtist *ProviderArtist `gorm:"foreignKey:ProviderArtistID" json:"providerArtist,omitempty"`
	Works          []Work          `gorm:"foreignKey:ComposerID"       json:"works,omitempty"`
}
