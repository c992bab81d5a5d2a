// Package spotify wraps the Spotify Web API behind a narrow interface
// so the usecases can be tested without network access.
package spotify

import (
	"fmt"
	"net/http"

	spotifyapi "github.com/zmb3/spotify"
	"golang.org/x/oauth2"

	"github.com/AnibeA/SPOT-A-FRIEND/domain"
)

// Spotify caps top-item pages at 50; the collector only keeps the short
// term (last four weeks) top 10, same as the frontend displays.
const (
	topItemsLimit = 10
	topItemsRange = "short"
)

// Identity is the subset of the Spotify profile this system stores.
type Identity struct {
	SpotifyID   string
	DisplayName string
}

// Snapshot is one fetch of a user's short-term listening data. Genres
// is the deduplicated union of the top artists' genre tags.
type Snapshot struct {
	Artists []domain.Artist
	Tracks  []string
	Genres  []string
}

type Service interface {
	AuthURL(state string) string
	Exchange(state string, r *http.Request) (*oauth2.Token, error)
	CurrentUser(token *oauth2.Token) (*Identity, error)
	// TopListening fetches the user's snapshot. The returned token is
	// the possibly-refreshed OAuth token and should be persisted when it
	// differs from the one passed in.
	TopListening(token *oauth2.Token) (*Snapshot, *oauth2.Token, error)
	// RecentlyPlayed fetches the names of the user's most recently
	// played tracks, newest first. Same token contract as TopListening.
	RecentlyPlayed(token *oauth2.Token) ([]string, *oauth2.Token, error)
}

type service struct {
	auth spotifyapi.Authenticator
}

func NewService(clientID, clientSecret, redirectURL string) Service {
	auth := spotifyapi.NewAuthenticator(
		redirectURL,
		spotifyapi.ScopeUserReadPrivate,
		spotifyapi.ScopeUserTopRead,
		spotifyapi.ScopeUserLibraryRead,
		spotifyapi.ScopeUserReadRecentlyPlayed,
	)
	auth.SetAuthInfo(clientID, clientSecret)
	return &service{auth: auth}
}

func (s *service) AuthURL(state string) string {
	// show_dialog form, so switching Spotify accounts stays possible.
	return s.auth.AuthURLWithDialog(state)
}

func (s *service) Exchange(state string, r *http.Request) (*oauth2.Token, error) {
	token, err := s.auth.Token(state, r)
	if err != nil {
		return nil, fmt.Errorf("spotify token exchange failed: %w", err)
	}
	return token, nil
}

func (s *service) CurrentUser(token *oauth2.Token) (*Identity, error) {
	client := s.auth.NewClient(token)
	user, err := client.CurrentUser()
	if err != nil {
		return nil, fmt.Errorf("spotify current user lookup failed: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("spotify returned a profile without an id")
	}
	return &Identity{SpotifyID: user.ID, DisplayName: user.DisplayName}, nil
}

func (s *service) TopListening(token *oauth2.Token) (*Snapshot, *oauth2.Token, error) {
	client := s.auth.NewClient(token)

	limit := topItemsLimit
	timerange := topItemsRange
	opts := &spotifyapi.Options{Limit: &limit, Timerange: &timerange}

	artistPage, err := client.CurrentUsersTopArtistsOpt(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("spotify top artists fetch failed: %w", err)
	}
	trackPage, err := client.CurrentUsersTopTracksOpt(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("spotify top tracks fetch failed: %w", err)
	}

	snapshot := &Snapshot{
		Artists: make([]domain.Artist, 0, len(artistPage.Artists)),
		Tracks:  make([]string, 0, len(trackPage.Tracks)),
		Genres:  make([]string, 0),
	}

	seenGenres := make(map[string]struct{})
	for _, artist := range artistPage.Artists {
		snapshot.Artists = append(snapshot.Artists, domain.Artist{
			Name:   artist.Name,
			Genres: artist.Genres,
		})
		for _, genre := range artist.Genres {
			if _, seen := seenGenres[genre]; seen {
				continue
			}
			seenGenres[genre] = struct{}{}
			snapshot.Genres = append(snapshot.Genres, genre)
		}
	}
	for _, track := range trackPage.Tracks {
		snapshot.Tracks = append(snapshot.Tracks, track.Name)
	}

	// The underlying oauth2 transport refreshes expired tokens on the
	// fly; surface the current one so callers can persist it.
	refreshed, err := client.Token()
	if err != nil {
		refreshed = token
	}
	return snapshot, refreshed, nil
}

func (s *service) RecentlyPlayed(token *oauth2.Token) ([]string, *oauth2.Token, error) {
	client := s.auth.NewClient(token)

	items, err := client.PlayerRecentlyPlayedOpt(&spotifyapi.RecentlyPlayedOptions{Limit: topItemsLimit})
	if err != nil {
		return nil, nil, fmt.Errorf("spotify recently played fetch failed: %w", err)
	}

	tracks := make([]string, 0, len(items))
	for _, item := range items {
		tracks = append(tracks, item.Track.Name)
	}

	refreshed, err := client.Token()
	if err != nil {
		refreshed = token
	}
	return tracks, refreshed, nil
}
