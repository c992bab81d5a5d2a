package main

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AnibeA/SPOT-A-FRIEND/api/route"
	"github.com/AnibeA/SPOT-A-FRIEND/bootstrap"
	"github.com/AnibeA/SPOT-A-FRIEND/domain"
	"github.com/AnibeA/SPOT-A-FRIEND/mongo"
)

func main() {
	app := bootstrap.App()

	env := app.Env

	db := app.Mongo.Database(env.DBName)
	defer app.CloseDBConnection()

	mongo.CreateIndexes(db, domain.CollectionUser)

	timeout := time.Duration(env.ContextTimeout) * time.Second

	engine := gin.Default()

	route.Setup(env, timeout, db, app.Genres, engine)

	engine.Run(env.ServerAddress)
}
