package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AnibeA/SPOT-A-FRIEND/domain"
)

type ComparisonController struct {
	ComparisonUsecase domain.ComparisonUsecase
}

// Compare handles GET /compare-users?user1=<id>&user2=<id>.
func (cc *ComparisonController) Compare(c *gin.Context) {
	user1ID := c.Query("user1")
	user2ID := c.Query("user2")

	if user1ID == "" || user2ID == "" {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "Missing user IDs"})
		return
	}

	result, err := cc.ComparisonUsecase.Compare(c.Request.Context(), user1ID, user2ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			c.JSON(http.StatusNotFound, domain.ErrorResponse{Error: "User not found"})
		case errors.Is(err, domain.ErrMissingUserID):
			c.JSON(http.StatusBadRequest, domain.ErrorResponse{Error: "Missing user IDs"})
		default:
			c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
