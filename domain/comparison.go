package domain

import (
	"context"
	"errors"
)

// ErrMissingUserID is returned when one or both user identifiers are
// absent from a comparison request. It maps to a 400 at the API boundary.
var ErrMissingUserID = errors.New("missing user IDs")

// ComparisonResult is the full payload of one taste comparison. Both
// vectors are index-aligned to the same basis: the sorted union of both
// users' mapped main genres, which is exactly MergedGenres.
type ComparisonResult struct {
	MergedSubGenres         []string `json:"merged_sub_genres"`
	MergedGenres            []string `json:"merged_genres"`
	User1Vector             []int    `json:"user1_vector"`
	User2Vector             []int    `json:"user2_vector"`
	CosineSimilarity        float64  `json:"cosine_similarity"`
	User1RecommendedArtists []string `json:"user1_recommended_artists"`
	User2RecommendedArtists []string `json:"user2_recommended_artists"`
}

type ComparisonUsecase interface {
	Compare(ctx context.Context, user1ID, user2ID string) (*ComparisonResult, error)
}
