package bootstrap

import (
	"github.com/AnibeA/SPOT-A-FRIEND/internal/genreutil"
	"github.com/AnibeA/SPOT-A-FRIEND/mongo"
)

type Application struct {
	Env    *Env
	Mongo  mongo.Client
	Genres genreutil.Mapping
}

func App() Application {
	app := &Application{}
	app.Env = NewEnv()
	app.Mongo = NewMongoDatabase(app.Env)
	app.Genres = NewGenreMapping(app.Env.GenreMappingPath)
	return *app
}

func (app *Application) CloseDBConnection() {
	CloseMongoDBConnection(app.Mongo)
}
