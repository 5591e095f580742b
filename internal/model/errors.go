package model

import "errors"

var (
	ErrConfig          = errors.New("invalid game config")
	ErrGameNotFound    = errors.New("game not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrBetRejected     = errors.New("bet rejected")
	ErrBonusInactive   = errors.New("free spins are not active")
	ErrBonusActive     = errors.New("free spins are already active")
	ErrSessionClosed   = errors.New("session is closed")
)
