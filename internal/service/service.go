package service

import (
	"context"

	"slot_engine/internal/model"
)

type GameService interface {
	Import(ctx context.Context, cfg *model.GameConfig) (version int, err error)
	Get(ctx context.Context, id string) (*model.GameConfig, error)
	List(ctx context.Context) ([]*model.GameConfig, error)
}

type SessionService interface {
	Open(ctx context.Context, gameID, clientSeed string) (model.SessionInfo, error)
	Spin(ctx context.Context, sessionID string, betPerLine float64) (*model.PlayResult, error)
	BuyBonus(ctx context.Context, sessionID string, betPerLine float64) (*model.PlayResult, error)
	Stats(ctx context.Context, sessionID string) (model.SessionStats, error)
	FreeSpins(ctx context.Context, sessionID string) (model.FreeSpinState, error)
	Close(ctx context.Context, sessionID string) (model.SessionClose, error)
}
