package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnibeA/SPOT-A-FRIEND/api/controller"
	"github.com/AnibeA/SPOT-A-FRIEND/bootstrap"
	"github.com/AnibeA/SPOT-A-FRIEND/domain"
	"github.com/AnibeA/SPOT-A-FRIEND/mongo"
	"github.com/AnibeA/SPOT-A-FRIEND/repository"
	"github.com/AnibeA/SPOT-A-FRIEND/spotify"
	"github.com/AnibeA/SPOT-A-FRIEND/usecase"
)

func NewAuthRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	sp := spotify.NewService(env.SpotifyClientID, env.SpotifyClientSecret, env.SpotifyRedirectURL)
	ac := &controller.AuthController{
		AuthUsecase: usecase.NewAuthUsecase(ur, sp, timeout),
		Env:         env,
	}
	group.GET("/login", ac.Login)
	group.GET("/callback", ac.Callback)
}
