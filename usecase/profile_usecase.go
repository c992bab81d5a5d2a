package usecase

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/oauth2"

	"github.com/AnibeA/SPOT-A-FRIEND/domain"
	"github.com/AnibeA/SPOT-A-FRIEND/spotify"
)

type profileUsecase struct {
	userRepository domain.UserRepository
	spotifyService spotify.Service
	contextTimeout time.Duration
}

func NewProfileUsecase(userRepository domain.UserRepository, spotifyService spotify.Service, timeout time.Duration) domain.ProfileUsecase {
	return &profileUsecase{
		userRepository: userRepository,
		spotifyService: spotifyService,
		contextTimeout: timeout,
	}
}

func (pu *profileUsecase) GetProfileBySpotifyID(ctx context.Context, spotifyID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	user, err := pu.userRepository.GetBySpotifyID(ctx, spotifyID)
	if err != nil {
		return nil, err
	}

	profile := loadProfile(user)
	tracks, _ := domain.DecodeStringList(user.TopTracks)
	return &domain.Profile{
		SpotifyID:   user.SpotifyID,
		DisplayName: user.DisplayName,
		TopArtists:  profile.Artists,
		TopTracks:   tracks,
		TopGenres:   profile.Genres,
		UpdatedAt:   user.UpdatedAt,
	}, nil
}

// RefreshListeningData refetches the user's short-term snapshot from
// Spotify with the stored OAuth token and persists it. The oauth2
// transport refreshes an expired access token transparently; a refreshed
// token is written back so the next fetch starts from it.
func (pu *profileUsecase) RefreshListeningData(ctx context.Context, spotifyID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	user, err := pu.userRepository.GetBySpotifyID(ctx, spotifyID)
	if err != nil {
		return nil, err
	}

	snapshot, refreshed, err := pu.spotifyService.TopListening(storedToken(user))
	if err != nil {
		return nil, err
	}

	err = pu.userRepository.UpdateListeningData(ctx, spotifyID,
		encodeListening(snapshot.Artists),
		encodeListening(snapshot.Tracks),
		encodeListening(snapshot.Genres),
	)
	if err != nil {
		return nil, err
	}

	if refreshed.AccessToken != user.AccessToken {
		err = pu.userRepository.UpdateTokens(ctx, spotifyID, refreshed.AccessToken, refreshed.RefreshToken, refreshed.Expiry)
		if err != nil {
			return nil, err
		}
	}

	return &domain.Profile{
		SpotifyID:   user.SpotifyID,
		DisplayName: user.DisplayName,
		TopArtists:  snapshot.Artists,
		TopTracks:   snapshot.Tracks,
		TopGenres:   snapshot.Genres,
		UpdatedAt:   time.Now().UTC(),
	}, nil
}

// RecentlyPlayed proxies the user's latest plays from Spotify without
// persisting them; only a rotated access token is written back.
func (pu *profileUsecase) RecentlyPlayed(ctx context.Context, spotifyID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	user, err := pu.userRepository.GetBySpotifyID(ctx, spotifyID)
	if err != nil {
		return nil, err
	}

	tracks, refreshed, err := pu.spotifyService.RecentlyPlayed(storedToken(user))
	if err != nil {
		return nil, err
	}

	if refreshed.AccessToken != user.AccessToken {
		err = pu.userRepository.UpdateTokens(ctx, spotifyID, refreshed.AccessToken, refreshed.RefreshToken, refreshed.Expiry)
		if err != nil {
			return nil, err
		}
	}

	return tracks, nil
}

func storedToken(user *domain.User) *oauth2.Token {
	return &oauth2.Token{
		AccessToken:  user.AccessToken,
		RefreshToken: user.RefreshToken,
		Expiry:       user.ExpiresAt,
		TokenType:    "Bearer",
	}
}

// encodeListening serializes a listening list to the stored string form.
// The input is always a slice of strings or Artist values, which cannot
// fail to marshal.
func encodeListening(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(data)
}
