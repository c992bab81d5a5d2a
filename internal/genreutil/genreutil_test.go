package genreutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testMapping() Mapping {
	return NewMapping(map[string][]string{
		"Hip Hop": {"Boom Bap", "trap", "drill"},
		"rock":    {"indie rock", "Shoegaze"},
		"r&b":     {"Neo Soul"},
	})
}

func TestNormalize_MapsAliasToMainGenre(t *testing.T) {
	mapping := testMapping()

	assert.Equal(t, "hip hop", mapping.Normalize("boom bap"))
	assert.Equal(t, "hip hop", mapping.Normalize("trap"))
	assert.Equal(t, "rock", mapping.Normalize("indie rock"))
	assert.Equal(t, "r&b", mapping.Normalize("neo soul"))
}

func TestNormalize_IsCaseInsensitive(t *testing.T) {
	mapping := testMapping()

	for _, input := range []string{"boom bap", "Boom Bap", "BOOM BAP", "bOoM bAp"} {
		assert.Equal(t, "hip hop", mapping.Normalize(input), "input %q", input)
	}
	assert.Equal(t, "rock", mapping.Normalize("SHOEGAZE"))
}

func TestNormalize_MainGenreIsItsOwnAlias(t *testing.T) {
	mapping := testMapping()

	assert.Equal(t, "hip hop", mapping.Normalize("Hip Hop"))
	assert.Equal(t, "rock", mapping.Normalize("ROCK"))
}

func TestNormalize_UnmappedFallsBackToFoldedInput(t *testing.T) {
	mapping := testMapping()

	assert.Equal(t, "vaporwave", mapping.Normalize("Vaporwave"))
	assert.Equal(t, "witch house", mapping.Normalize("Witch House"))
	assert.Equal(t, "", mapping.Normalize(""))
}

func TestNormalize_IsDeterministic(t *testing.T) {
	mapping := testMapping()

	first := mapping.Normalize("Drill")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, mapping.Normalize("Drill"))
	}
}

func TestNewMapping_Size(t *testing.T) {
	mapping := NewMapping(map[string][]string{"pop": {"dance pop", "electropop"}})

	// Two aliases plus the main genre itself.
	assert.Equal(t, 3, mapping.Size())
}
