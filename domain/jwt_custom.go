package domain

import (
	jwt "github.com/golang-jwt/jwt/v4"
)

type JwtCustomClaims struct {
	Name      string `json:"name"`
	SpotifyID string `json:"spotify_id"`
	jwt.RegisteredClaims
}
