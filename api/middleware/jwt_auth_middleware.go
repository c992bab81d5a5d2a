package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AnibeA/SPOT-A-FRIEND/domain"
	"github.com/AnibeA/SPOT-A-FRIEND/internal/tokenutil"
)

func JwtAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		t := strings.Split(authHeader, " ")
		if len(t) == 2 {
			authToken := t[1]
			authorized, _ := tokenutil.IsAuthorized(authToken, secret)
			if authorized {
				spotifyID, err := tokenutil.ExtractSpotifyIDFromToken(authToken, secret)
				if err != nil {
					c.JSON(http.StatusUnauthorized, domain.ErrorResponse{Error: err.Error()})
					c.Abort()
					return
				}
				c.Set("x-spotify-id", spotifyID)
				c.Next()
				return
			}
		}
		c.JSON(http.StatusUnauthorized, domain.ErrorResponse{Error: "Not authorized"})
		c.Abort()
	}
}
