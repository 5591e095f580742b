package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"slot_engine/internal/model"
)

// Issuer Издатель токенов игровых сессий
const Issuer = "slot_engine"

var errNoSubject = errors.New("token has no session id")

// GenerateAccessToken Токен доступа к игровой сессии, subject это ID сессии
func GenerateAccessToken(info model.SessionInfo, secretKey []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := model.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   info.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		GameID: info.GameID,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secretKey)
}

// VerifyToken Проверка подписи, срока и издателя
func VerifyToken(tokenStr string, secretKey []byte) (*model.SessionClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(Issuer),
	)

	var claims model.SessionClaims
	if _, err := parser.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
		return secretKey, nil
	}); err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	if claims.Subject == "" {
		return nil, errNoSubject
	}

	return &claims, nil
}
