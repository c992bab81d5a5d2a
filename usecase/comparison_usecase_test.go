package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/AnibeA/SPOT-A-FRIEND/domain"
	"github.com/AnibeA/SPOT-A-FRIEND/domain/mocks"
	"github.com/AnibeA/SPOT-A-FRIEND/internal/genreutil"
)

func testGenreMapping() genreutil.Mapping {
	return genreutil.NewMapping(map[string][]string{
		"pop":     {"dance pop", "electropop"},
		"rock":    {"indie rock", "shoegaze"},
		"hip hop": {"trap", "boom bap"},
	})
}

func storedUser(spotifyID, topArtists, topGenres string) *domain.User {
	return &domain.User{
		SpotifyID:  spotifyID,
		TopArtists: topArtists,
		TopGenres:  topGenres,
	}
}

func newComparisonUsecase(t *testing.T, user1, user2 *domain.User) domain.ComparisonUsecase {
	t.Helper()
	mockRepo := new(mocks.UserRepository)
	mockRepo.On("GetBySpotifyID", mock.Anything, user1.SpotifyID).Return(user1, nil)
	mockRepo.On("GetBySpotifyID", mock.Anything, user2.SpotifyID).Return(user2, nil)
	return NewComparisonUsecase(mockRepo, testGenreMapping(), 2*time.Second)
}

func TestCompare_SharedGenreCrossRecommends(t *testing.T) {
	user1 := storedUser("u1", `["A"]`, `["pop"]`)
	user2 := storedUser("u2", `["B"]`, `["pop"]`)
	uc := newComparisonUsecase(t, user1, user2)

	result, err := uc.Compare(context.Background(), "u1", "u2")

	require.NoError(t, err)
	assert.Equal(t, []string{"pop"}, result.MergedGenres)
	assert.Equal(t, []string{"pop"}, result.MergedSubGenres)
	assert.Equal(t, []int{1}, result.User1Vector)
	assert.Equal(t, []int{1}, result.User2Vector)
	assert.InDelta(t, 1.0, result.CosineSimilarity, 1e-9)
	assert.Equal(t, []string{"B"}, result.User1RecommendedArtists)
	assert.Equal(t, []string{"A"}, result.User2RecommendedArtists)
}

func TestCompare_NoSharedGenres(t *testing.T) {
	user1 := storedUser("u1", `["A"]`, `[]`)
	user2 := storedUser("u2", `["B"]`, `["rock"]`)
	uc := newComparisonUsecase(t, user1, user2)

	result, err := uc.Compare(context.Background(), "u1", "u2")

	require.NoError(t, err)
	assert.Equal(t, 0.0, result.CosineSimilarity)
	assert.Empty(t, result.User1RecommendedArtists)
	assert.Empty(t, result.User2RecommendedArtists)
	assert.Equal(t, []string{"rock"}, result.MergedGenres)
	assert.Equal(t, []int{0}, result.User1Vector)
	assert.Equal(t, []int{1}, result.User2Vector)
}

func TestCompare_MalformedStoredGenresDegradesToEmpty(t *testing.T) {
	user1 := storedUser("u1", `["A"]`, "not valid json")
	user2 := storedUser("u2", `["B"]`, `["rock", "shoegaze"]`)
	uc := newComparisonUsecase(t, user1, user2)

	result, err := uc.Compare(context.Background(), "u1", "u2")

	require.NoError(t, err)
	assert.Equal(t, []string{"rock", "shoegaze"}, result.MergedSubGenres)
	assert.Equal(t, []string{"rock"}, result.MergedGenres)
	assert.Equal(t, 0.0, result.CosineSimilarity)
	assert.Empty(t, result.User1RecommendedArtists)
}

func TestCompare_UserNotFound(t *testing.T) {
	mockRepo := new(mocks.UserRepository)
	mockRepo.On("GetBySpotifyID", mock.Anything, "u1").Return(storedUser("u1", "", ""), nil)
	mockRepo.On("GetBySpotifyID", mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)
	uc := NewComparisonUsecase(mockRepo, testGenreMapping(), 2*time.Second)

	result, err := uc.Compare(context.Background(), "u1", "missing")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCompare_MissingIDSkipsLookup(t *testing.T) {
	mockRepo := new(mocks.UserRepository)
	uc := NewComparisonUsecase(mockRepo, testGenreMapping(), 2*time.Second)

	for _, ids := range [][2]string{{"", "u2"}, {"u1", ""}, {"", ""}} {
		result, err := uc.Compare(context.Background(), ids[0], ids[1])

		assert.Nil(t, result)
		assert.ErrorIs(t, err, domain.ErrMissingUserID)
	}
	mockRepo.AssertNotCalled(t, "GetBySpotifyID", mock.Anything, mock.Anything)
}

func TestCompare_SubGenresMapOntoSameMainGenre(t *testing.T) {
	// trap and boom bap are both hip hop; vectors collapse to one genre.
	user1 := storedUser("u1", `["A"]`, `["Trap"]`)
	user2 := storedUser("u2", `["B"]`, `["BOOM BAP"]`)
	uc := newComparisonUsecase(t, user1, user2)

	result, err := uc.Compare(context.Background(), "u1", "u2")

	require.NoError(t, err)
	assert.Equal(t, []string{"hip hop"}, result.MergedGenres)
	assert.InDelta(t, 1.0, result.CosineSimilarity, 1e-9)
	assert.Equal(t, []string{"B"}, result.User1RecommendedArtists)
}

func TestCompare_PerArtistTagsGateRecommendations(t *testing.T) {
	// C is tagged indie rock only; rock is not shared, so C never crosses.
	user1 := storedUser("u1",
		`[{"name": "A", "genres": ["trap"]}, {"name": "C", "genres": ["indie rock"]}]`,
		`["trap", "indie rock"]`)
	user2 := storedUser("u2",
		`[{"name": "B", "genres": ["boom bap"]}]`,
		`["boom bap"]`)
	uc := newComparisonUsecase(t, user1, user2)

	result, err := uc.Compare(context.Background(), "u1", "u2")

	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, result.User1RecommendedArtists)
	assert.Equal(t, []string{"A"}, result.User2RecommendedArtists)
	assert.NotContains(t, result.User2RecommendedArtists, "C")
}

func TestCompare_BareNameArtistsJoinEveryProfileGenre(t *testing.T) {
	// Without per-artist tags every artist rides on every profile genre.
	user1 := storedUser("u1", `["A", "C"]`, `["pop", "rock"]`)
	user2 := storedUser("u2", `["B"]`, `["pop"]`)
	uc := newComparisonUsecase(t, user1, user2)

	result, err := uc.Compare(context.Background(), "u1", "u2")

	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, result.User1RecommendedArtists)
	assert.Equal(t, []string{"A", "C"}, result.User2RecommendedArtists)
}

func TestCompare_OwnedArtistNeverRecommendedBack(t *testing.T) {
	user1 := storedUser("u1", `["X"]`, `["pop", "rock"]`)
	user2 := storedUser("u2", `["X", "Y"]`, `["pop", "rock"]`)
	uc := newComparisonUsecase(t, user1, user2)

	result, err := uc.Compare(context.Background(), "u1", "u2")

	require.NoError(t, err)
	assert.Equal(t, []string{"Y"}, result.User1RecommendedArtists)
	assert.NotContains(t, result.User1RecommendedArtists, "X")
	assert.Empty(t, result.User2RecommendedArtists)
}

func TestCompare_RepeatedCallsSerializeIdentically(t *testing.T) {
	user1 := storedUser("u1", `["A"]`, `["pop", "trap", "indie rock"]`)
	user2 := storedUser("u2", `["B"]`, `["electropop", "boom bap"]`)
	uc := newComparisonUsecase(t, user1, user2)

	first, err := uc.Compare(context.Background(), "u1", "u2")
	require.NoError(t, err)
	second, err := uc.Compare(context.Background(), "u1", "u2")
	require.NoError(t, err)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, firstJSON, secondJSON)
}

func TestCompare_EmptyResultSlicesSerializeAsArrays(t *testing.T) {
	user1 := storedUser("u1", "", "")
	user2 := storedUser("u2", "", "")
	uc := newComparisonUsecase(t, user1, user2)

	result, err := uc.Compare(context.Background(), "u1", "u2")

	require.NoError(t, err)
	payload, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"merged_sub_genres": [],
		"merged_genres": [],
		"user1_vector": [],
		"user2_vector": [],
		"cosine_similarity": 0,
		"user1_recommended_artists": [],
		"user2_recommended_artists": []
	}`, string(payload))
}
