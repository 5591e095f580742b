package env

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// spec Переменные окружения процесса
type spec struct {
	HTTPAddress         string        `envconfig:"HTTP_ADDRESS" default:":8080"`
	PGDSN               string        `envconfig:"PG_DSN"`
	PGMaxConns          int32         `envconfig:"PG_MAX_CONNS" default:"0"`
	AccessToken         string        `envconfig:"ACCESS_TOKEN"`
	AccessTokenDuration time.Duration `envconfig:"ACCESS_TOKEN_DURATION" default:"24h"`
	GamesDir            string        `envconfig:"GAMES_DIR" default:"games"`
	StatsWindow         int           `envconfig:"STATS_WINDOW" default:"500"`
	AppEnv              string        `envconfig:"APP_ENV" default:"dev"`
	LogLevel            string        `envconfig:"LOG_LEVEL" default:"info"`
}

func process() (*spec, error) {
	var s spec
	if err := envconfig.Process("", &s); err != nil {
		return nil, err
	}
	return &s, nil
}
