package model

import "github.com/golang-jwt/jwt/v5"

// SessionClaims Claims токена доступа игровой сессии. Subject содержит ID сессии
type SessionClaims struct {
	jwt.RegisteredClaims
	GameID string `json:"gameId"`
}
