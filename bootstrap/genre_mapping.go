package bootstrap

import (
	"encoding/json"
	"log"
	"os"

	"github.com/AnibeA/SPOT-A-FRIEND/internal/genreutil"
)

// NewGenreMapping loads the main-genre to sub-genre alias table. The
// table is read once here and shared read-only for the process lifetime.
func NewGenreMapping(path string) genreutil.Mapping {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("Can't read the genre mapping file: ", err)
	}

	var table map[string][]string
	if err := json.Unmarshal(data, &table); err != nil {
		log.Fatal("Genre mapping can't be parsed: ", err)
	}

	mapping := genreutil.NewMapping(table)
	log.Printf("Loaded genre mapping with %d alias entries", mapping.Size())
	return mapping
}
