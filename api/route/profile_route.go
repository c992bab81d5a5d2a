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

func NewProfileRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	sp := spotify.NewService(env.SpotifyClientID, env.SpotifyClientSecret, env.SpotifyRedirectURL)
	pc := &controller.ProfileController{
		ProfileUsecase: usecase.NewProfileUsecase(ur, sp, timeout),
	}
	group.GET("/me", pc.Fetch)
	group.GET("/refresh-data", pc.RefreshData)
	group.GET("/recently-played", pc.RecentlyPlayed)
}
