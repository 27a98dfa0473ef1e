package domain

import "strings"

// GuessArtistName derives an artist name from a release title for rows
// where the artist_name field was never filled in. Convention on this
// catalog is "Artist - Title"; when there is no hyphen the first word is
// the best remaining guess. Returns "" when nothing can be derived.
func GuessArtistName(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return ""
	}

	if before, _, found := strings.Cut(title, "-"); found {
		if name := strings.TrimSpace(before); name != "" {
			return name
		}
	}

	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
