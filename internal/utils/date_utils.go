package utils

import "strconv"

// YearFromReleaseDate takes the leading YYYY segment of a provider release-date
// string ("1963", "1963-05", "1963-05-17"). Returns nil when unparseable rather
// than an error: a missing year must never block an album save.
func YearFromReleaseDate(releaseDate string) *int {
	if len(releaseDate) < 4 {
		return nil
	}

	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return nil
	}

	return &year
}
