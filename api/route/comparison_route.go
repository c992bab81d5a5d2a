package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnibeA/SPOT-A-FRIEND/api/controller"
	"github.com/AnibeA/SPOT-A-FRIEND/bootstrap"
	"github.com/AnibeA/SPOT-A-FRIEND/domain"
	"github.com/AnibeA/SPOT-A-FRIEND/internal/genreutil"
	"github.com/AnibeA/SPOT-A-FRIEND/mongo"
	"github.com/AnibeA/SPOT-A-FRIEND/repository"
	"github.com/AnibeA/SPOT-A-FRIEND/usecase"
)

func NewComparisonRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, genres genreutil.Mapping, group *gin.RouterGroup) {
	ur := repository.NewUserRepository(db, domain.CollectionUser)
	cc := &controller.ComparisonController{
		ComparisonUsecase: usecase.NewComparisonUsecase(ur, genres, timeout),
	}
	// GET /compare-users?user1=<spotify_id>&user2=<spotify_id>
	group.GET("/compare-users", cc.Compare)
}
