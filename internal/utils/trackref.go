package utils

import (
	"regexp"

	"maestro/internal/types"
)

var (
	trackURIPattern = regexp.MustCompile(`^spotify:track:([A-Za-z0-9]+)$`)
	trackURLPattern = regexp.MustCompile(`^https?://open\.spotify\.com/track/([A-Za-z0-9]+)(?:\?.*)?$`)
)

// ExtractTrackID pulls the Spotify track identifier out of either the URI form
// ("spotify:track:<id>") or the web URL form
// ("https://open.spotify.com/track/<id>"). Anything else is invalid input.
func ExtractTrackID(ref string) (string, error) {
	if m := trackURIPattern.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if m := trackURLPattern.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	return "", types.ErrInvalidInput
}
