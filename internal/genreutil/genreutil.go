// Package genreutil maps raw sub-genre strings, as reported by Spotify,
// to the canonical main-genre labels the comparison engine works with.
package genreutil

import (
	"golang.org/x/text/cases"
)

// Mapping is the static sub-genre to main-genre table. It is built once
// at startup and read concurrently afterwards, so it must not be
// mutated after NewMapping returns.
type Mapping struct {
	aliasToMain map[string]string
}

// NewMapping builds a Mapping from a main-genre -> aliases table. All
// keys and aliases are case-folded up front so lookups are a single map
// access. A main genre is always an alias of itself.
func NewMapping(table map[string][]string) Mapping {
	fold := cases.Fold()
	aliasToMain := make(map[string]string, len(table))
	for mainGenre, aliases := range table {
		main := fold.String(mainGenre)
		aliasToMain[main] = main
		for _, alias := range aliases {
			aliasToMain[fold.String(alias)] = main
		}
	}
	return Mapping{aliasToMain: aliasToMain}
}

// Normalize returns the main genre the raw sub-genre belongs to, or the
// case-folded input itself when no mapping exists. It is total and
// deterministic; callers may memoize results freely.
func (m Mapping) Normalize(rawGenre string) string {
	folded := cases.Fold().String(rawGenre)
	if main, ok := m.aliasToMain[folded]; ok {
		return main
	}
	return folded
}

// Size reports the number of alias entries, main genres included.
func (m Mapping) Size() int {
	return len(m.aliasToMain)
}
