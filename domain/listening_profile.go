package domain

import "encoding/json"

// Artist is one entry of a stored top-artists list. Older snapshots
// carry bare names, newer ones carry the per-artist genre tags too, so
// Genres may be empty.
type Artist struct {
	Name   string   `json:"name"`
	Genres []string `json:"genres,omitempty"`
}

// ListeningProfile is the decoded, in-memory form of one user's stored
// snapshot. It is built per request and never written back.
type ListeningProfile struct {
	Artists []Artist
	Genres  []string
}

// DecodeStringList parses a stored top-genres or top-tracks field. The
// second return reports whether the field held a valid list; empty, null
// or malformed input degrades to an empty slice instead of failing.
func DecodeStringList(raw string) ([]string, bool) {
	if raw == "" {
		return []string{}, false
	}
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil || values == nil {
		return []string{}, false
	}
	return values, true
}

// DecodeArtists parses a stored top-artists field. It accepts both the
// rich form `[{"name": ..., "genres": [...]}]` and the legacy bare-name
// form `["name", ...]`. Malformed input degrades to an empty slice.
func DecodeArtists(raw string) ([]Artist, bool) {
	if raw == "" {
		return []Artist{}, false
	}
	var artists []Artist
	if err := json.Unmarshal([]byte(raw), &artists); err == nil && artists != nil {
		return artists, true
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err == nil && names != nil {
		artists = make([]Artist, 0, len(names))
		for _, name := range names {
			artists = append(artists, Artist{Name: name})
		}
		return artists, true
	}
	return []Artist{}, false
}

// ArtistNames returns the set of artist names in the profile.
func (p ListeningProfile) ArtistNames() map[string]struct{} {
	names := make(map[string]struct{}, len(p.Artists))
	for _, artist := range p.Artists {
		names[artist.Name] = struct{}{}
	}
	return names
}
