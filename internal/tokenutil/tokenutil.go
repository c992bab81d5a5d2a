package tokenutil

import (
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v4"

	"github.com/AnibeA/SPOT-A-FRIEND/domain"
)

// CreateAccessToken mints the session token handed to the frontend after
// the Spotify OAuth callback.
func CreateAccessToken(user *domain.User, secret string, expiryHours int) (string, error) {
	exp := time.Now().Add(time.Hour * time.Duration(expiryHours))
	claims := &domain.JwtCustomClaims{
		Name:      user.DisplayName,
		SpotifyID: user.SpotifyID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// IsAuthorized reports whether the request token is a valid, unexpired
// session token signed with secret.
func IsAuthorized(requestToken string, secret string) (bool, error) {
	_, err := jwt.Parse(requestToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// ExtractSpotifyIDFromToken returns the spotify_id claim of a valid
// session token.
func ExtractSpotifyIDFromToken(requestToken string, secret string) (string, error) {
	token, err := jwt.Parse(requestToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	spotifyID, ok := claims["spotify_id"].(string)
	if !ok || spotifyID == "" {
		return "", fmt.Errorf("token carries no spotify_id claim")
	}
	return spotifyID, nil
}
