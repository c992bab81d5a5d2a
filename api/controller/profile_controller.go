package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnibeA/SPOT-A-FRIEND/domain"
)

type ProfileController struct {
	ProfileUsecase domain.ProfileUsecase
}

// Fetch returns the stored profile of the session user.
func (pc *ProfileController) Fetch(c *gin.Context) {
	spotifyID := c.GetString("x-spotify-id")

	profile, err := pc.ProfileUsecase.GetProfileBySpotifyID(c.Request.Context(), spotifyID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, domain.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RefreshData refetches the session user's listening snapshot from
// Spotify and returns the updated profile.
func (pc *ProfileController) RefreshData(c *gin.Context) {
	spotifyID := c.GetString("x-spotify-id")

	profile, err := pc.ProfileUsecase.RefreshListeningData(c.Request.Context(), spotifyID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, domain.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusBadGateway, domain.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RecentlyPlayed returns the session user's latest plays from Spotify.
func (pc *ProfileController) RecentlyPlayed(c *gin.Context) {
	spotifyID := c.GetString("x-spotify-id")

	tracks, err := pc.ProfileUsecase.RecentlyPlayed(c.Request.Context(), spotifyID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, domain.ErrorResponse{Error: "User not found"})
			return
		}
		c.JSON(http.StatusBadGateway, domain.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recently_played": tracks})
}
