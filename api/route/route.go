package route

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnibeA/SPOT-A-FRIEND/api/middleware"
	"github.com/AnibeA/SPOT-A-FRIEND/bootstrap"
	"github.com/AnibeA/SPOT-A-FRIEND/domain"
	"github.com/AnibeA/SPOT-A-FRIEND/internal/genreutil"
	"github.com/AnibeA/SPOT-A-FRIEND/mongo"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, genres genreutil.Mapping, engine *gin.Engine) {
	publicRouter := engine.Group("")
	publicRouter.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, domain.SuccessResponse{Message: "Welcome to Spot A Friend Backend!"})
	})
	NewAuthRouter(env, timeout, db, publicRouter)
	NewComparisonRouter(env, timeout, db, genres, publicRouter)

	protectedRouter := engine.Group("")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.AccessTokenSecret))
	NewProfileRouter(env, timeout, db, protectedRouter)
}
