package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/AnibeA/SPOT-A-FRIEND/domain"
	"github.com/AnibeA/SPOT-A-FRIEND/mongo"
)

type userRepository struct {
	database   mongo.Database
	collection string
}

func NewUserRepository(db mongo.Database, collection string) domain.UserRepository {
	return &userRepository{
		database:   db,
		collection: collection,
	}
}

func (ur *userRepository) GetBySpotifyID(ctx context.Context, spotifyID string) (*domain.User, error) {
	collection := ur.database.Collection(ur.collection)

	var user domain.User
	err := collection.FindOne(ctx, bson.M{"spotify_id": spotifyID}).Decode(&user)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	return &user, nil
}

// Upsert writes the user's tokens, identity and listening snapshot,
// keyed by Spotify ID. Used by the OAuth callback, where the user may or
// may not already exist.
func (ur *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	collection := ur.database.Collection(ur.collection)

	filter := bson.M{"spotify_id": user.SpotifyID}
	update := bson.M{"$set": bson.M{
		"display_name":  user.DisplayName,
		"access_token":  user.AccessToken,
		"refresh_token": user.RefreshToken,
		"expires_at":    user.ExpiresAt,
		"top_artists":   user.TopArtists,
		"top_tracks":    user.TopTracks,
		"top_genres":    user.TopGenres,
		"updated_at":    time.Now().UTC(),
	}}

	opts := options.Update().SetUpsert(true)
	_, err := collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return fmt.Errorf("user upsert failed: %w", err)
	}
	return nil
}

func (ur *userRepository) UpdateListeningData(ctx context.Context, spotifyID, artists, tracks, genres string) error {
	collection := ur.database.Collection(ur.collection)

	update := bson.M{"$set": bson.M{
		"top_artists": artists,
		"top_tracks":  tracks,
		"top_genres":  genres,
		"updated_at":  time.Now().UTC(),
	}}

	result, err := collection.UpdateOne(ctx, bson.M{"spotify_id": spotifyID}, update)
	if err != nil {
		return fmt.Errorf("listening data update failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (ur *userRepository) UpdateTokens(ctx context.Context, spotifyID, accessToken, refreshToken string, expiresAt time.Time) error {
	collection := ur.database.Collection(ur.collection)

	set := bson.M{
		"access_token": accessToken,
		"expires_at":   expiresAt,
	}
	// Spotify does not always return a new refresh token; keep the old
	// one in that case.
	if refreshToken != "" {
		set["refresh_token"] = refreshToken
	}

	result, err := collection.UpdateOne(ctx, bson.M{"spotify_id": spotifyID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("token update failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
