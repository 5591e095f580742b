package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Load Подгрузить переменные из .env файлов. Уже заданные в окружении не перезаписываются
func Load(paths ...string) error {
	return godotenv.Load(paths...)
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
	MaxConns() int32 // 0 значит значение pgxpool по умолчанию
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
}

type GamesConfig interface {
	Dir() string
	StatsWindow() int
}

type LogConfig interface {
	Env() string
	Level() string
}
