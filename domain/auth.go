package domain

import (
	"context"
	"net/http"
)

type AuthUsecase interface {
	// AuthURL builds the Spotify authorization redirect for the given
	// anti-forgery state nonce.
	AuthURL(state string) string
	// HandleCallback exchanges the authorization code carried by r,
	// fetches the user's identity and listening snapshot and upserts the
	// stored user record.
	HandleCallback(ctx context.Context, r *http.Request, state string) (*User, error)
}
