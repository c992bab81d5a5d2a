package usecase

import (
	"context"
	"log"
	"sort"
	"time"

	"github.com/AnibeA/SPOT-A-FRIEND/domain"
	"github.com/AnibeA/SPOT-A-FRIEND/internal/genreutil"
	"github.com/AnibeA/SPOT-A-FRIEND/internal/vectorutil"
)

type comparisonUsecase struct {
	userRepository domain.UserRepository
	genres         genreutil.Mapping
	contextTimeout time.Duration
}

func NewComparisonUsecase(userRepository domain.UserRepository, genres genreutil.Mapping, timeout time.Duration) domain.ComparisonUsecase {
	return &comparisonUsecase{
		userRepository: userRepository,
		genres:         genres,
		contextTimeout: timeout,
	}
}

// Compare resolves both users, maps their sub-genres onto main genres,
// scores the overlap with cosine similarity and proposes each user the
// other's artists from the genres they share. Read-only on both records.
func (cu *comparisonUsecase) Compare(ctx context.Context, user1ID, user2ID string) (*domain.ComparisonResult, error) {
	if user1ID == "" || user2ID == "" {
		return nil, domain.ErrMissingUserID
	}

	ctx, cancel := context.WithTimeout(ctx, cu.contextTimeout)
	defer cancel()

	user1, err := cu.userRepository.GetBySpotifyID(ctx, user1ID)
	if err != nil {
		return nil, err
	}
	user2, err := cu.userRepository.GetBySpotifyID(ctx, user2ID)
	if err != nil {
		return nil, err
	}

	profile1 := loadProfile(user1)
	profile2 := loadProfile(user2)

	// One normalization cache per request; the mapping itself is shared
	// and immutable.
	normalize := memoizedNormalizer(cu.genres)

	mapped1 := mappedGenreSet(profile1.Genres, normalize)
	mapped2 := mappedGenreSet(profile2.Genres, normalize)

	basis, vector1, vector2 := vectorutil.BuildVectors(mapped1, mapped2)
	similarity, err := vectorutil.CosineSimilarity(vector1, vector2)
	if err != nil {
		// Unreachable: both vectors come out of the same BuildVectors call.
		return nil, err
	}

	recsFor1, recsFor2 := crossRecommend(profile1, profile2, mapped1, mapped2, normalize)

	return &domain.ComparisonResult{
		MergedSubGenres:         mergeUnique(profile1.Genres, profile2.Genres),
		MergedGenres:            basis,
		User1Vector:             vector1,
		User2Vector:             vector2,
		CosineSimilarity:        similarity,
		User1RecommendedArtists: recsFor1,
		User2RecommendedArtists: recsFor2,
	}, nil
}

// loadProfile decodes a user's stored snapshot. Malformed fields degrade
// to empty collections; the comparison still answers with whatever the
// other fields hold.
func loadProfile(user *domain.User) domain.ListeningProfile {
	genres, ok := domain.DecodeStringList(user.TopGenres)
	if !ok && user.TopGenres != "" {
		log.Printf("user %s: malformed top_genres, treating as empty", user.SpotifyID)
	}
	artists, ok := domain.DecodeArtists(user.TopArtists)
	if !ok && user.TopArtists != "" {
		log.Printf("user %s: malformed top_artists, treating as empty", user.SpotifyID)
	}
	return domain.ListeningProfile{Artists: artists, Genres: genres}
}

func memoizedNormalizer(mapping genreutil.Mapping) func(string) string {
	cache := make(map[string]string)
	return func(rawGenre string) string {
		if main, ok := cache[rawGenre]; ok {
			return main
		}
		main := mapping.Normalize(rawGenre)
		cache[rawGenre] = main
		return main
	}
}

func mappedGenreSet(rawGenres []string, normalize func(string) string) map[string]struct{} {
	set := make(map[string]struct{}, len(rawGenres))
	for _, genre := range rawGenres {
		set[normalize(genre)] = struct{}{}
	}
	return set
}

// mergeUnique unions two raw genre lists, deduplicated and sorted so a
// repeated comparison serializes identically.
func mergeUnique(genres1, genres2 []string) []string {
	seen := make(map[string]struct{}, len(genres1)+len(genres2))
	merged := make([]string, 0, len(genres1)+len(genres2))
	for _, genre := range genres1 {
		if _, dup := seen[genre]; dup {
			continue
		}
		seen[genre] = struct{}{}
		merged = append(merged, genre)
	}
	for _, genre := range genres2 {
		if _, dup := seen[genre]; dup {
			continue
		}
		seen[genre] = struct{}{}
		merged = append(merged, genre)
	}
	sort.Strings(merged)
	return merged
}

// groupArtistsByGenre indexes a user's artists by mapped main genre.
// Artists stored without per-artist tags are associated with every genre
// of the profile, which inflates recall; see DESIGN.md.
func groupArtistsByGenre(profile domain.ListeningProfile, normalize func(string) string) map[string][]string {
	byGenre := make(map[string][]string)
	for _, artist := range profile.Artists {
		tags := artist.Genres
		if len(tags) == 0 {
			tags = profile.Genres
		}
		seen := make(map[string]struct{}, len(tags))
		for _, tag := range tags {
			genre := normalize(tag)
			if _, dup := seen[genre]; dup {
				continue
			}
			seen[genre] = struct{}{}
			byGenre[genre] = append(byGenre[genre], artist.Name)
		}
	}
	return byGenre
}

// crossRecommend proposes, for each shared main genre, the other user's
// artists in that genre that the receiving user does not already have.
// No shared genres means no recommendations, which is not an error.
func crossRecommend(profile1, profile2 domain.ListeningProfile, mapped1, mapped2 map[string]struct{}, normalize func(string) string) (recsFor1, recsFor2 []string) {
	shared := make(map[string]struct{})
	for genre := range mapped1 {
		if _, ok := mapped2[genre]; ok {
			shared[genre] = struct{}{}
		}
	}

	byGenre1 := groupArtistsByGenre(profile1, normalize)
	byGenre2 := groupArtistsByGenre(profile2, normalize)

	recsFor1 = pickUnknown(shared, byGenre2, profile1.ArtistNames())
	recsFor2 = pickUnknown(shared, byGenre1, profile2.ArtistNames())
	return recsFor1, recsFor2
}

// pickUnknown collects the candidate artists across shared genres,
// skipping anything the receiving user already listens to. An owned
// artist never comes back even when a different shared genre surfaces it.
func pickUnknown(shared map[string]struct{}, byGenre map[string][]string, owned map[string]struct{}) []string {
	recommendations := make([]string, 0)
	seen := make(map[string]struct{})
	for genre := range shared {
		for _, name := range byGenre[genre] {
			if _, has := owned[name]; has {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			recommendations = append(recommendations, name)
		}
	}
	sort.Strings(recommendations)
	return recommendations
}
