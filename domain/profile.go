package domain

import (
	"context"
	"time"
)

// Profile is the decoded view of a stored user returned to the frontend.
type Profile struct {
	SpotifyID   string    `json:"spotify_id"`
	DisplayName string    `json:"display_name"`
	TopArtists  []Artist  `json:"top_artists"`
	TopTracks   []string  `json:"top_tracks"`
	TopGenres   []string  `json:"top_genres"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ProfileUsecase interface {
	GetProfileBySpotifyID(ctx context.Context, spotifyID string) (*Profile, error)
	// RefreshListeningData refetches the user's top artists, tracks and
	// genres from Spotify with the stored OAuth token and persists them.
	RefreshListeningData(ctx context.Context, spotifyID string) (*Profile, error)
	// RecentlyPlayed returns the user's latest plays straight from
	// Spotify. The list is not stored.
	RecentlyPlayed(ctx context.Context, spotifyID string) ([]string, error)
}
