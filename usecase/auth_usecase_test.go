package usecase

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/AnibeA/SPOT-A-FRIEND/domain"
	"github.com/AnibeA/SPOT-A-FRIEND/domain/mocks"
	"github.com/AnibeA/SPOT-A-FRIEND/spotify"
	spotifymocks "github.com/AnibeA/SPOT-A-FRIEND/spotify/mocks"
)

func TestHandleCallback_UpsertsUserWithSnapshot(t *testing.T) {
	request := httptest.NewRequest("GET", "/callback?code=abc&state=nonce", nil)
	expiry := time.Now().Add(time.Hour).UTC()
	token := &oauth2.Token{AccessToken: "access", RefreshToken: "refresh", Expiry: expiry}

	mockSpotify := new(spotifymocks.Service)
	mockSpotify.On("Exchange", "nonce", request).Return(token, nil)
	mockSpotify.On("CurrentUser", token).Return(&spotify.Identity{SpotifyID: "u1", DisplayName: "Anibe"}, nil)
	mockSpotify.On("TopListening", token).Return(&spotify.Snapshot{
		Artists: []domain.Artist{{Name: "Clairo", Genres: []string{"bedroom pop"}}},
		Tracks:  []string{"Sofia"},
		Genres:  []string{"bedroom pop"},
	}, token, nil)

	mockRepo := new(mocks.UserRepository)
	mockRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(user *domain.User) bool {
		return user.SpotifyID == "u1" &&
			user.DisplayName == "Anibe" &&
			user.AccessToken == "access" &&
			user.RefreshToken == "refresh" &&
			user.TopArtists == `[{"name":"Clairo","genres":["bedroom pop"]}]` &&
			user.TopTracks == `["Sofia"]` &&
			user.TopGenres == `["bedroom pop"]`
	})).Return(nil)

	uc := NewAuthUsecase(mockRepo, mockSpotify, 2*time.Second)

	user, err := uc.HandleCallback(context.Background(), request, "nonce")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.SpotifyID)
	mockRepo.AssertExpectations(t)
}

func TestHandleCallback_ExchangeFailureStopsFlow(t *testing.T) {
	request := httptest.NewRequest("GET", "/callback?error=access_denied", nil)

	mockSpotify := new(spotifymocks.Service)
	mockSpotify.On("Exchange", "nonce", request).Return(nil, errors.New("spotify token exchange failed"))

	mockRepo := new(mocks.UserRepository)
	uc := NewAuthUsecase(mockRepo, mockSpotify, 2*time.Second)

	user, err := uc.HandleCallback(context.Background(), request, "nonce")

	assert.Nil(t, user)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestAuthURL_DelegatesToSpotify(t *testing.T) {
	mockSpotify := new(spotifymocks.Service)
	mockSpotify.On("AuthURL", "nonce").Return("https://accounts.spotify.com/authorize?state=nonce")

	uc := NewAuthUsecase(new(mocks.UserRepository), mockSpotify, 2*time.Second)

	assert.Equal(t, "https://accounts.spotify.com/authorize?state=nonce", uc.AuthURL("nonce"))
}
