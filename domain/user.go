package domain

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUserNotFound is returned when a Spotify ID does not resolve to a
// stored user. It maps to a 404 at the API boundary.
var ErrUserNotFound = errors.New("user not found")

// User stores Spotify authentication details and the last collected
// listening snapshot. The listening fields are kept as raw JSON strings,
// exactly as received from the collector; the comparison path decodes
// them defensively and never writes them back.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SpotifyID    string             `bson:"spotify_id" json:"spotify_id"`
	DisplayName  string             `bson:"display_name" json:"display_name"`
	AccessToken  string             `bson:"access_token" json:"-"`
	RefreshToken string             `bson:"refresh_token" json:"-"`
	ExpiresAt    time.Time          `bson:"expires_at" json:"-"`
	TopArtists   string             `bson:"top_artists" json:"top_artists"`
	TopTracks    string             `bson:"top_tracks" json:"top_tracks"`
	TopGenres    string             `bson:"top_genres" json:"top_genres"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type UserRepository interface {
	GetBySpotifyID(ctx context.Context, spotifyID string) (*User, error)
	Upsert(ctx context.Context, user *User) error
	UpdateListeningData(ctx context.Context, spotifyID, artists, tracks, genres string) error
	UpdateTokens(ctx context.Context, spotifyID, accessToken, refreshToken string, expiresAt time.Time) error
}
