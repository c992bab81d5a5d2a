package controller

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/AnibeA/SPOT-A-FRIEND/bootstrap"
	"github.com/AnibeA/SPOT-A-FRIEND/domain"
	"github.com/AnibeA/SPOT-A-FRIEND/internal/tokenutil"
)

// stateCookieName holds the anti-forgery nonce between /login and
// /callback.
const stateCookieName = "spotify_auth_state"

type AuthController struct {
	AuthUsecase domain.AuthUsecase
	Env         *bootstrap.Env
}

// Login redirects the browser to the Spotify authorization page.
func (ac *AuthController) Login(c *gin.Context) {
	state, err := generateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "Failed to start login"})
		return
	}

	c.SetCookie(stateCookieName, state, 600, "/", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, ac.AuthUsecase.AuthURL(state))
}

// Callback handles the Spotify OAuth redirect, stores the user and sends
// the browser back to the frontend with a session token.
func (ac *AuthController) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookieName)
	if err != nil || state == "" {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "Missing auth state"})
		return
	}
	if c.Query("code") == "" {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "Authorization failed"})
		return
	}

	user, err := ac.AuthUsecase.HandleCallback(c.Request.Context(), c.Request, state)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "Failed to retrieve access token from Spotify"})
		return
	}

	accessToken, err := tokenutil.CreateAccessToken(user, ac.Env.AccessTokenSecret, ac.Env.AccessTokenExpiryHour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: "Failed to create session token"})
		return
	}

	redirect := fmt.Sprintf("%s?spotify_id=%s&token=%s",
		ac.Env.FrontendRedirectURL,
		url.QueryEscape(user.SpotifyID),
		url.QueryEscape(accessToken),
	)
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}

func generateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
