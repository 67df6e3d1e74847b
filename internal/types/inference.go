package types

// InferenceEntry is one title/artists pair submitted to the metadata parser.
type InferenceEntry struct {
	TrackName   string   `json:"trackName"`
	ArtistNames []string `json:"artistNames"`
}

// ParsedMetadata is what the parser could extract from one entry. Every field
// is best-effort; absent pieces stay empty or nil.
type ParsedMetadata struct {
	ComposerName   string  `json:"composerName,omitempty"`
	CatalogSystem  string  `json:"catalogSystem,omitempty"`
	CatalogNumber  string  `json:"catalogNumber,omitempty"`
	WorkTitle      string  `json:"workTitle,omitempty"`
	Nickname       string  `json:"nickname,omitempty"`
	Key            string  `json:"key,omitempty"`
	Form           string  `json:"form,omitempty"`
	MovementNumber *int    `json:"movementNumber,omitempty"`
	MovementTitle  string  `json:"movementTitle,omitempty"`
	YearComposed   *int    `json:"yearComposed,omitempty"`
}
