package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/AnibeA/SPOT-A-FRIEND/domain"
	"github.com/AnibeA/SPOT-A-FRIEND/spotify"
)

type authUsecase struct {
	userRepository domain.UserRepository
	spotifyService spotify.Service
	contextTimeout time.Duration
}

func NewAuthUsecase(userRepository domain.UserRepository, spotifyService spotify.Service, timeout time.Duration) domain.AuthUsecase {
	return &authUsecase{
		userRepository: userRepository,
		spotifyService: spotifyService,
		contextTimeout: timeout,
	}
}

func (au *authUsecase) AuthURL(state string) string {
	return au.spotifyService.AuthURL(state)
}

// HandleCallback finishes the OAuth code flow: exchanges the code, looks
// up the Spotify identity, collects the initial listening snapshot and
// upserts the user record.
func (au *authUsecase) HandleCallback(ctx context.Context, r *http.Request, state string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	token, err := au.spotifyService.Exchange(state, r)
	if err != nil {
		return nil, err
	}

	identity, err := au.spotifyService.CurrentUser(token)
	if err != nil {
		return nil, err
	}

	snapshot, refreshed, err := au.spotifyService.TopListening(token)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		SpotifyID:    identity.SpotifyID,
		DisplayName:  identity.DisplayName,
		AccessToken:  refreshed.AccessToken,
		RefreshToken: refreshed.RefreshToken,
		ExpiresAt:    refreshed.Expiry,
		TopArtists:   encodeListening(snapshot.Artists),
		TopTracks:    encodeListening(snapshot.Tracks),
		TopGenres:    encodeListening(snapshot.Genres),
	}

	if err := au.userRepository.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
