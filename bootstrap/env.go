package bootstrap

import (
	"log"

	"github.com/spf13/viper"
)

type Env struct {
	AppEnv                string `mapstructure:"APP_ENV"`
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	ContextTimeout        int    `mapstructure:"CONTEXT_TIMEOUT"`
	DBName                string `mapstructure:"DB_NAME"`
	MongoURI              string `mapstructure:"MONGO_URI"`
	AccessTokenExpiryHour int    `mapstructure:"ACCESS_TOKEN_EXPIRY_HOUR"`
	AccessTokenSecret     string `mapstructure:"ACCESS_TOKEN_SECRET"`
	SpotifyClientID       string `mapstructure:"SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret   string `mapstructure:"SPOTIFY_CLIENT_SECRET"`
	SpotifyRedirectURL    string `mapstructure:"SPOTIFY_REDIRECT_URL"`
	FrontendRedirectURL   string `mapstructure:"FRONTEND_REDIRECT_URL"`
	GenreMappingPath      string `mapstructure:"GENRE_MAPPING_PATH"`
}

func NewEnv() *Env {
	env := Env{}
	viper.SetConfigFile(".env")

	err := viper.ReadInConfig()
	if err != nil {
		log.Fatal("Can't find the file .env : ", err)
	}

	err = viper.Unmarshal(&env)
	if err != nil {
		log.Fatal("Environment can't be loaded: ", err)
	}

	if env.AppEnv == "development" {
		log.Println("The App is running in development env")
	}

	return &env
}
