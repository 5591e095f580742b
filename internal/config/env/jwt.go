package env

import (
	"errors"
	"fmt"
	"time"

	"slot_engine/internal/config"
)

type jwtConfig struct {
	accessTokenSecretKey string
	accessTokenDuration  time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	s, err := process()
	if err != nil {
		return nil, err
	}
	if len(s.AccessToken) == 0 {
		return nil, errors.New("access token secret key not found")
	}
	if s.AccessTokenDuration <= 0 {
		return nil, fmt.Errorf("invalid access token duration: %v", s.AccessTokenDuration)
	}
	return &jwtConfig{
		accessTokenSecretKey: s.AccessToken,
		accessTokenDuration:  s.AccessTokenDuration,
	}, nil
}

func (j *jwtConfig) AccessTokenSecretKey() []byte {
	return []byte(j.accessTokenSecretKey)
}

func (j *jwtConfig) AccessTokenDuration() time.Duration {
	return j.accessTokenDuration
}
