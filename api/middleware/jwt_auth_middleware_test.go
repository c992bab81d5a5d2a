package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnibeA/SPOT-A-FRIEND/domain"
	"github.com/AnibeA/SPOT-A-FRIEND/internal/tokenutil"
)

const testSecret = "middleware-secret"

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JwtAuthMiddleware(testSecret))
	router.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"spotify_id": c.GetString("x-spotify-id")})
	})
	return router
}

func TestJwtAuthMiddleware_NoHeader(t *testing.T) {
	router := setupProtectedRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.JSONEq(t, `{"error": "Not authorized"}`, recorder.Body.String())
}

func TestJwtAuthMiddleware_BadToken(t *testing.T) {
	router := setupProtectedRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	request.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestJwtAuthMiddleware_ValidTokenSetsSpotifyID(t *testing.T) {
	token, err := tokenutil.CreateAccessToken(&domain.User{SpotifyID: "u1"}, testSecret, 2)
	require.NoError(t, err)

	router := setupProtectedRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/me", nil)
	request.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"spotify_id": "u1"}`, recorder.Body.String())
}
